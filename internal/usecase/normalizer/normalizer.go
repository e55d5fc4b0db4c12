// Package normalizer maps the loosely-shaped raw survey records into the
// strict internal model. Every field resolves through an ordered candidate
// path list (current nested name first, legacy flat names after) and falls
// back to a zero/empty default, so the output model is always fully
// populated.
package normalizer

import (
	"github.com/shopspring/decimal"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Normalize builds the internal model from the raw (basic, design) record
// pair. Either record may be nil.
func Normalize(basic, design map[string]any) domain.Model {
	return domain.Model{
		Profile:    normalizeProfile(basic),
		Income:     normalizeIncome(basic),
		Expense:    normalizeExpense(basic),
		Assets:     normalizeAssets(basic),
		Debts:      normalizeDebts(basic),
		Goal:       normalizeGoal(basic),
		Retirement: normalizeRetirement(design),
		Investment: normalizeInvestment(design),
		Tax:        normalizeTax(design),
		Insurance:  normalizeInsurance(design),
	}
}

func normalizeProfile(basic map[string]any) domain.HouseholdProfile {
	return domain.HouseholdProfile{
		Name:          str(basic, domain.DefaultHouseholdName, "personalInfo.name", "profile.name", "name"),
		Age:           integer(basic, "personalInfo.age", "age"),
		RetirementAge: integer(basic, "personalInfo.retireAge", "personalInfo.retirementAge", "retireAge"),
		Married:       boolish(basic, "personalInfo.married", "personalInfo.isMarried", "married"),
		DualIncome:    boolish(basic, "personalInfo.dualIncome", "personalInfo.isDualIncome", "dualIncome"),
		Occupation:    str(basic, "", "personalInfo.job", "personalInfo.occupation", "job"),
		FamilySize:    integer(basic, "personalInfo.familySize", "personalInfo.family", "familySize"),
	}
}

func normalizeIncome(basic map[string]any) domain.IncomeStatement {
	income := domain.IncomeStatement{
		Salary:       num(basic, "income.salary", "salary"),
		SpouseSalary: num(basic, "income.spouseIncome", "income.spouseSalary", "spouseIncome"),
		OtherIncome:  num(basic, "income.otherIncome", "income.other", "otherIncome"),
	}

	// An explicitly entered total is authoritative; otherwise it is the sum
	// of the three components.
	if total, ok := firstNum(basic, "income.total", "incomeTotal"); ok {
		income.Total = total
	} else {
		income.Total = income.Salary.Add(income.SpouseSalary).Add(income.OtherIncome)
	}
	return income
}

func normalizeExpense(basic map[string]any) domain.ExpenseStatement {
	expense := domain.ExpenseStatement{
		Living:           num(basic, "expense.living", "expense.livingCost", "living"),
		InsurancePremium: num(basic, "expense.insurance", "expense.insurancePremium", "insurance"),
		LoanService:      num(basic, "expense.loanPayment", "expense.loan", "loanPayment"),
		Savings:          num(basic, "expense.saving", "expense.savings", "saving"),
		Pension:          num(basic, "expense.pension", "expense.pensionSaving", "pension"),
		Surplus:          num(basic, "expense.surplus", "expense.remainder", "surplus"),
	}

	if total, ok := firstNum(basic, "expense.total", "expenseTotal"); ok {
		expense.Total = total
	} else {
		expense.Total = expense.Living.
			Add(expense.InsurancePremium).
			Add(expense.LoanService).
			Add(expense.Savings).
			Add(expense.Pension).
			Add(expense.Surplus)
	}
	return expense
}

func normalizeAssets(basic map[string]any) domain.AssetPortfolio {
	assets := domain.AssetPortfolio{
		RealEstate:    num(basic, "assets.realEstate", "realEstate"),
		Financial:     num(basic, "assets.financial", "assets.financialAsset", "financial"),
		EmergencyFund: num(basic, "assets.emergencyFund", "assets.emergency", "emergencyFund"),
	}

	// Itemized total first, then the legacy aggregate field, then the item
	// sum.
	if total, ok := firstNum(basic, "assets.total", "assets.totalAsset", "totalAsset"); ok {
		assets.Total = total
	} else {
		assets.Total = assets.RealEstate.Add(assets.Financial).Add(assets.EmergencyFund)
	}
	return assets
}

func normalizeDebts(basic map[string]any) domain.DebtPortfolio {
	debts := domain.DebtPortfolio{
		Mortgage: normalizeLoans(array(basic, "debts.mortgage", "debts.mortgageLoans")),
		Credit:   normalizeLoans(array(basic, "debts.credit", "debts.creditLoans")),
		Other:    normalizeLoans(array(basic, "debts.other", "debts.otherLoans")),
	}

	if total, ok := firstNum(basic, "debts.totalDebt", "debts.total", "totalDebt"); ok {
		debts.Total = total
	} else {
		debts.Total = debts.MortgageTotal().Add(debts.CreditTotal()).Add(debts.OtherTotal())
	}
	return debts
}

// loanFields are the raw keys the model interprets; anything else is carried
// through on Loan.Extra.
var loanFields = map[string]struct{}{
	"name": {}, "label": {}, "amount": {}, "balance": {},
	"rate": {}, "interestRate": {}, "term": {}, "months": {},
}

func normalizeLoans(items []any) []domain.Loan {
	loans := make([]domain.Loan, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		loan := domain.Loan{
			Name:       str(raw, "", "name", "label"),
			Amount:     num(raw, "amount", "balance"),
			TermMonths: integer(raw, "term", "months"),
		}
		if rate, ok := firstNum(raw, "rate", "interestRate"); ok {
			loan.Rate, _ = rate.Float64()
		}
		for key, value := range raw {
			if _, known := loanFields[key]; known {
				continue
			}
			if loan.Extra == nil {
				loan.Extra = make(map[string]any)
			}
			loan.Extra[key] = value
		}
		loans = append(loans, loan)
	}
	return loans
}

func normalizeGoal(basic map[string]any) domain.SavingsGoal {
	return domain.SavingsGoal{
		Purpose:      str(basic, "", "goal.purpose", "goal.label", "goalPurpose"),
		HorizonYears: integer(basic, "goal.years", "goal.period", "goalYears"),
		TargetAmount: num(basic, "goal.amount", "goal.targetAmount", "goalAmount"),
	}
}

func normalizeRetirement(design map[string]any) domain.RetirementPlan {
	return domain.RetirementPlan{
		CurrentAge:      integer(design, "retire.currentAge", "retire.age"),
		RetirementAge:   integer(design, "retire.retireAge", "retire.retirementAge"),
		MonthlyExpense:  num(design, "retire.monthlyExpense", "retire.livingCost"),
		PublicPension:   num(design, "retire.publicPension", "retire.nationalPension"),
		PrivatePension:  num(design, "retire.privatePension", "retire.personalPension"),
		LumpSum:         num(design, "retire.lumpSum", "retire.retirementPay"),
		RentalIncome:    num(design, "retire.rentalIncome", "retire.rental"),
		FinancialIncome: num(design, "retire.financialIncome", "retire.financial"),
	}
}

func normalizeInvestment(design map[string]any) domain.InvestmentProfile {
	return domain.InvestmentProfile{
		Age:           integer(design, "invest.age", "invest.currentAge"),
		MonthlyIncome: num(design, "invest.monthlyIncome", "invest.income"),
		TotalAssets:   num(design, "invest.totalAssets", "invest.totalAsset"),
		TotalDebt:     num(design, "invest.totalDebt", "invest.debt"),
		Portfolio: domain.PortfolioBreakdown{
			Liquid:    num(design, "invest.portfolio.liquid", "invest.liquid"),
			Safe:      num(design, "invest.portfolio.safe", "invest.safe"),
			Growth:    num(design, "invest.portfolio.growth", "invest.growth"),
			HighRisk:  num(design, "invest.portfolio.highRisk", "invest.highRisk"),
			Emergency: num(design, "invest.portfolio.emergency", "invest.emergency"),
		},
		ResidentialRealEstate: num(design, "invest.homeRealEstate", "invest.homeValue"),
		InvestmentRealEstate:  num(design, "invest.investRealEstate", "invest.investmentRealEstate"),
		DualIncome:            boolish(design, "invest.dualIncome", "invest.isDualIncome"),
	}
}

func normalizeTax(design map[string]any) domain.TaxProfile {
	return domain.TaxProfile{
		IncomeTax: domain.IncomeTaxInput{
			AnnualSalary:  num(design, "tax.incomeData.salary", "tax.salary"),
			DeterminedTax: num(design, "tax.incomeData.determinedTax", "tax.determinedTax"),
			PrepaidTax:    num(design, "tax.incomeData.prepaidTax", "tax.prepaidTax"),
		},
		InheritanceTax: domain.InheritanceTaxInput{
			TotalAssets:   num(design, "tax.inheritData.totalAssets", "tax.inheritAssets"),
			TotalDebts:    num(design, "tax.inheritData.totalDebts", "tax.inheritData.totalDebt"),
			HasSpouse:     boolish(design, "tax.inheritData.hasSpouse", "tax.hasSpouse"),
			ChildrenCount: integer(design, "tax.inheritData.childrenCount", "tax.inheritData.children"),
		},
	}
}

func normalizeInsurance(design map[string]any) domain.InsurancePortfolio {
	prepared := make(map[string]decimal.Decimal, len(domain.CoverageKeys))
	for _, key := range domain.CoverageKeys {
		path := "insurance.prepared." + key
		if domain.IsBinaryCoverage(key) {
			if boolish(design, path) {
				prepared[key] = decimal.NewFromInt(1)
			} else {
				prepared[key] = decimal.Zero
			}
			continue
		}
		prepared[key] = num(design, path)
	}

	return domain.InsurancePortfolio{
		AnnualIncome: num(design, "insurance.income", "insurance.annualIncome"),
		TotalDebt:    num(design, "insurance.debt", "insurance.totalDebt"),
		Prepared:     prepared,
	}
}
