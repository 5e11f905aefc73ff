package domain

// UserRole is the access level of a user inside an ownership group.
type UserRole string

const (
	RoleOwner        UserRole = "owner"
	RoleCollaborator UserRole = "collaborator"
	RoleViewer       UserRole = "viewer"
	RoleTenant       UserRole = "tenant"
)

// Currency codes accepted across the registry.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
	CurrencyEUR Currency = "EUR"
)

// User represents an account in the registry. Email is the legacy login
// lookup key; uniqueness is not enforced.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	CUIT    string   `json:"cuit"`
	Role    UserRole `json:"role"`
	GroupID string   `json:"groupId,omitempty"`
}

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyGarage    PropertyType = "garage"
	PropertyStore     PropertyType = "store"
	PropertyWarehouse PropertyType = "warehouse"
	PropertyLand      PropertyType = "land"
	PropertyOther     PropertyType = "other"
)

// Address is the postal location of a property.
type Address struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
}

// PropertyFeatures describes the physical characteristics of a property.
type PropertyFeatures struct {
	Rooms         int      `json:"rooms"`
	Bathrooms     int      `json:"bathrooms"`
	CoveredArea   float64  `json:"coveredArea"`
	UncoveredArea float64  `json:"uncoveredArea"`
	Amenities     []string `json:"amenities"`
}

type DocumentType string

const (
	DocumentDeed       DocumentType = "deed"
	DocumentRegulation DocumentType = "regulation"
	DocumentContract   DocumentType = "contract"
	DocumentOther      DocumentType = "other"
)

// Document is a file attached to a property (deed, regulation, ...).
type Document struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Type DocumentType `json:"type"`
}

// Property is a real-estate unit managed by an owner.
// TenantID mirrors the tenant of the most recently added active contract;
// AddContract is the only writer of that field besides direct updates.
type Property struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Address       Address          `json:"address"`
	Type          PropertyType     `json:"type"`
	PurchaseValue float64          `json:"purchaseValue,omitempty"`
	Currency      Currency         `json:"currency"`
	Features      PropertyFeatures `json:"features"`
	OwnerID       string           `json:"ownerId"`
	TenantID      string           `json:"tenantId,omitempty"`
	Images        []string         `json:"images"`
	Documents     []Document       `json:"documents"`
}

type ServiceType string

const (
	ServiceElectricity ServiceType = "electricity"
	ServiceGas         ServiceType = "gas"
	ServiceWater       ServiceType = "water"
	ServiceInternet    ServiceType = "internet"
	ServiceCable       ServiceType = "cable"
	ServiceTaxes       ServiceType = "taxes"
	ServiceExpenses    ServiceType = "expenses"
	ServiceOther       ServiceType = "other"
)

// PaymentPeriodicity is how often a recurring service is billed.
type PaymentPeriodicity string

const (
	PeriodicityDaily       PaymentPeriodicity = "daily"
	PeriodicityWeekly      PaymentPeriodicity = "weekly"
	PeriodicityMonthly     PaymentPeriodicity = "monthly"
	PeriodicityBimonthly   PaymentPeriodicity = "bimonthly"
	PeriodicityQuarterly   PaymentPeriodicity = "quarterly"
	PeriodicityFourMonthly PaymentPeriodicity = "four_monthly"
	PeriodicitySemiannual  PaymentPeriodicity = "semiannual"
	PeriodicityAnnual      PaymentPeriodicity = "annual"
	PeriodicityOneTime     PaymentPeriodicity = "one_time"
)

// Service is a recurring utility or tax attached to a property
// (ABL, building expenses, electricity, ...).
type Service struct {
	ID          string             `json:"id"`
	PropertyID  string             `json:"propertyId"`
	Name        string             `json:"name"`
	Type        ServiceType        `json:"type"`
	ProviderID  string             `json:"providerId,omitempty"`
	Periodicity PaymentPeriodicity `json:"periodicity"`
}

type ExpenseCategory string

const (
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseRepair      ExpenseCategory = "repair"
	ExpenseService     ExpenseCategory = "service"
	ExpenseTax         ExpenseCategory = "tax"
	ExpenseOther       ExpenseCategory = "other"
)

// Expense is a cost recorded against a property. Date is an ISO
// YYYY-MM-DD string and is preserved verbatim.
type Expense struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	Date        string          `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Currency    Currency        `json:"currency"`
	Description string          `json:"description"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
	IsPaid      bool            `json:"isPaid"`
}

type IncomeStatus string

const (
	IncomeConfirmed IncomeStatus = "confirmed"
	IncomePending   IncomeStatus = "pending"
)

// Income is a rent payment recorded against a property.
type Income struct {
	ID         string       `json:"id"`
	PropertyID string       `json:"propertyId"`
	TenantID   string       `json:"tenantId"`
	Date       string       `json:"date"`
	Amount     float64      `json:"amount"`
	Currency   Currency     `json:"currency"`
	Period     string       `json:"period"`
	ReceiptURL string       `json:"receiptUrl,omitempty"`
	Status     IncomeStatus `json:"status"`
}

// TenantContract binds a tenant to a property for a period.
// At most one contract per property has IsActive = true.
type TenantContract struct {
	ID                    string   `json:"id"`
	PropertyID            string   `json:"propertyId"`
	TenantID              string   `json:"tenantId"`
	StartDate             string   `json:"startDate"`
	EndDate               string   `json:"endDate"`
	UpdateFrequencyMonths int      `json:"updateFrequencyMonths"`
	NextUpdateDate        string   `json:"nextUpdateDate"`
	Amount                float64  `json:"amount"`
	Currency              Currency `json:"currency"`
	IsActive              bool     `json:"isActive"`
}
