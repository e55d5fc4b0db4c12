package domain

// DesireStage is one of the six ordered financial-maturity stages. Exactly
// one stage is selected per snapshot; the classifier is stateless and simply
// re-evaluates the gates on every computation.
type DesireStage struct {
	Seq         int    `json:"seq"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// The DESIRE progression, in gate-evaluation order.
var (
	StageDebtFree = DesireStage{
		Seq: 1, Code: "D", Name: "Debt-free", Icon: "💳",
		Description: "Credit-type debt is outstanding. Clearing high-interest debt comes before everything else.",
	}
	StageEmergency = DesireStage{
		Seq: 2, Code: "E", Name: "Emergency fund", Icon: "🛟",
		Description: "The emergency fund does not yet cover the target months of essential expenses.",
	}
	StageSavings = DesireStage{
		Seq: 3, Code: "S", Name: "Savings", Icon: "🏦",
		Description: "No active monthly saving. Building the saving habit is the current priority.",
	}
	StageInvestment = DesireStage{
		Seq: 4, Code: "I", Name: "Investment", Icon: "📈",
		Description: "Investable assets are still below the threshold for meaningful compounding.",
	}
	StageRetirement = DesireStage{
		Seq: 5, Code: "R", Name: "Retirement", Icon: "🏠",
		Description: "Mortgage-type debt remains. Retiring it secures housing before retirement.",
	}
	StageEnjoy = DesireStage{
		Seq: 6, Code: "E+", Name: "Enjoy", Icon: "🎉",
		Description: "Financially independent. Maintain the current structure and enjoy it.",
	}
)
