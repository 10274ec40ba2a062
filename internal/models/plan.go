package models

type PlanID string

const (
	PlanStarter      PlanID = "starter"
	PlanProfessional PlanID = "professional"
	PlanEnterprise   PlanID = "enterprise"
)

type Plan struct {
	ID           PlanID   `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthly_price"`
	Currency     string   `json:"currency"`
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted"`
}

var Plans = []Plan{
	{
		ID: PlanStarter, Name: "Starter", MonthlyPrice: 29, Currency: "USD",
		Features: []string{"Up to 2 team members", "500 leads", "Email inbox"},
	},
	{
		ID: PlanProfessional, Name: "Professional", MonthlyPrice: 79, Currency: "USD",
		Features:    []string{"Up to 10 team members", "Unlimited leads", "WhatsApp inbox", "Booking vouchers"},
		Highlighted: true,
	},
	{
		ID: PlanEnterprise, Name: "Enterprise", MonthlyPrice: 199, Currency: "USD",
		Features: []string{"Unlimited team members", "Priority support", "Custom integrations"},
	},
}

func FindPlan(id PlanID) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

type CheckoutRequest struct {
	PlanID PlanID `json:"plan_id" validate:"required"`
}

// CheckoutIntent tells the caller where to send the browser.
type CheckoutIntent struct {
	PlanID      PlanID `json:"plan_id"`
	RedirectURL string `json:"redirect_url"`
}
