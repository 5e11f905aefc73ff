package http

import "github.com/gin-gonic/gin"

// Register mounts the registry routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/properties", h.ListProperties)
	rg.POST("/properties", h.CreateProperty)
	rg.GET("/properties/:id", h.GetProperty)
	rg.PUT("/properties/:id", h.UpdateProperty)
	rg.DELETE("/properties/:id", h.DeleteProperty)
	rg.POST("/properties/:id/images", h.UploadPropertyImage)

	rg.GET("/properties/:id/services", h.ListServices)
	rg.POST("/properties/:id/services", h.CreateService)
	rg.DELETE("/services/:id", h.DeleteService)

	rg.GET("/properties/:id/expenses", h.ListExpenses)
	rg.POST("/properties/:id/expenses", h.CreateExpense)

	rg.GET("/properties/:id/incomes", h.ListIncomes)
	rg.POST("/properties/:id/incomes", h.CreateIncome)

	rg.GET("/properties/:id/contracts", h.ListContracts)
	rg.POST("/properties/:id/contracts", h.CreateContract)
	rg.PUT("/contracts/:id", h.UpdateContract)
}
