// Package content holds the static display records of the informational pages:
// the landing page, the help center and the admin console.
package content

// Card is a titled card with an optional call to action.
type Card struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Action      string `yaml:"action,omitempty" json:"action,omitempty"`
}

// FAQ is a question of the help center.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Landing is the customer home page.
type Landing struct {
	Headline   string `yaml:"headline"`
	Tagline    string `yaml:"tagline"`
	HowItWorks string `yaml:"howItWorks"`
	Features   []Card `yaml:"features"`
}

// HelpCenter is the help page.
type HelpCenter struct {
	Topics  []string `yaml:"topics"`
	FAQ     []FAQ    `yaml:"faq"`
	Support []Card   `yaml:"support"`
}

// AdminStat is a counter card of the admin overview.
type AdminStat struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Value    string `yaml:"value"`
	Subtitle string `yaml:"subtitle"`
}

// QuickStat is a labelled figure of the analytics page.
type QuickStat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// BusinessOwner is a registered business shown in the admin console.
type BusinessOwner struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	BusinessName string `yaml:"businessName"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	TotalOrders  int    `yaml:"totalOrders"`
	Revenue      string `yaml:"revenue"`
	Status       string `yaml:"status"`
}

// AdminConsole groups the content of every admin page.
type AdminConsole struct {
	Overview       []AdminStat     `yaml:"overview"`
	RecentOrders   []AdminOrder    `yaml:"recentOrders"`
	Orders         []AdminOrder    `yaml:"orders"`
	BusinessOwners []BusinessOwner `yaml:"businessOwners"`
	Analytics      []QuickStat     `yaml:"analytics"`
}

// ShipmentRow is a row of the business dashboard's active shipments.
type ShipmentRow struct {
	ID            string `yaml:"id"`
	Route         string `yaml:"route"`
	Status        string `yaml:"status"`
	TimeRemaining string `yaml:"timeRemaining"`
	Level         int    `yaml:"level"`
}

// DashboardStat is a counter card of the business dashboard.
type DashboardStat struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Value int    `yaml:"value"`
}

// Dashboard is the static part of the business dashboard.
type Dashboard struct {
	Stats       []DashboardStat `yaml:"stats"`
	Shipments   []ShipmentRow   `yaml:"shipments"`
	Performance []QuickStat     `yaml:"performance"`
}

// ShipmentSample is the canned state of a tracked shipment.
type ShipmentSample struct {
	CurrentStep   string `yaml:"currentStep"`
	ETA           string `yaml:"eta"`
	DriverNote    string `yaml:"driverNote"`
	DriverName    string `yaml:"driverName"`
	DriverRating  string `yaml:"driverRating"`
	PickupAddress string `yaml:"pickupAddress"`
}
