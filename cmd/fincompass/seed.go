package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Demo household used by `seed`: dual income, a credit loan outstanding, a
// partially funded retirement plan.
const seedBasicRecord = `{
  "personalInfo": {"name": "Demo household", "age": 41, "retireAge": 62, "married": true, "dualIncome": true, "job": "office worker", "familySize": 4},
  "interests": ["retire", "insurance"],
  "goal": {"purpose": "home upgrade", "years": 5, "amount": 30000},
  "income": {"salary": 420, "spouseIncome": 260, "otherIncome": 20},
  "expense": {"living": 280, "insurance": 45, "loanPayment": 95, "saving": 120, "pension": 40, "surplus": 120},
  "assets": {"realEstate": 65000, "financial": 12000, "emergencyFund": 1500},
  "debts": {
    "mortgage": [{"name": "home loan", "amount": 21000, "rate": 3.9, "term": 240}],
    "credit": [{"name": "credit line", "amount": 1800, "rate": 6.5}],
    "other": []
  }
}`

const seedDesignRecord = `{
  "retire": {"currentAge": 41, "retireAge": 62, "monthlyExpense": 320, "publicPension": 110, "privatePension": 45, "lumpSum": 12000, "rentalIncome": 0, "financialIncome": 10},
  "invest": {"age": 41, "monthlyIncome": 700, "totalAssets": 78500, "totalDebt": 22800,
    "portfolio": {"liquid": 2500, "safe": 5000, "growth": 3500, "highRisk": 1000, "emergency": 1500},
    "homeRealEstate": 58000, "investRealEstate": 7000, "dualIncome": true},
  "tax": {
    "incomeData": {"salary": 5040, "determinedTax": 310, "prepaidTax": 360},
    "inheritData": {"totalAssets": 78500, "totalDebts": 22800, "hasSpouse": true, "childrenCount": 2}
  },
  "insurance": {"income": 8400, "debt": 22800,
    "prepared": {"death": 15000, "disability": 0, "critical": 5000, "accident": 3000, "hospital": 1500, "care": 0, "medical": "yes", "driver": "no"}}
}`

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a demo household into the record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Put(ctx, domain.KeyBasicFinal, []byte(seedBasicRecord)); err != nil {
			return err
		}
		if err := store.Put(ctx, domain.KeyDesign, []byte(seedDesignRecord)); err != nil {
			return err
		}

		zap.L().Info("demo records seeded",
			zap.String("basic_key", domain.KeyBasicFinal),
			zap.String("design_key", domain.KeyDesign),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
