package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyAmount is a single aggregated amount keyed by calendar month
// ("YYYY-MM").
type MonthlyAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyPnLRow is one month of the profit and loss report. A month appears
// when it has sales or expenses; the missing side is zero.
type MonthlyPnLRow struct {
	Month       string          `json:"month"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
}

// MonthlyRevenueRow is one month of revenue and units sold.
type MonthlyRevenueRow struct {
	Month     string          `json:"month"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int64           `json:"unitsSold"`
}

// TopSellingProduct aggregates sales per batch, ordered by quantity sold.
type TopSellingProduct struct {
	BatchID      string          `json:"batchID"`
	ProductName  string          `json:"productName"`
	TotalQty     int64           `json:"totalQty"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// LowStockAlert flags a batch whose closing stock is at or below the alert
// threshold (and not negative).
type LowStockAlert struct {
	BatchID      string `json:"batchID"`
	ProductName  string `json:"productName"`
	ClosingStock int64  `json:"closingStock"`
}

// CashSummary is the derived cash position. Pending entries never contribute
// to CashInHand.
type CashSummary struct {
	CashInHand      decimal.Decimal `json:"cashInHand"`
	PendingReceipts decimal.Decimal `json:"pendingReceipts"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
}

// CapitalLedger is the full capital running-balance view plus the final
// balance.
type CapitalLedger struct {
	Rows    []CapitalLedgerRow `json:"rows"`
	Balance decimal.Decimal    `json:"balance"`
}

// DashboardKPIs are the headline figures for the current calendar month.
type DashboardKPIs struct {
	TotalProducts   int64           `json:"totalProducts"`
	StockValue      decimal.Decimal `json:"stockValue"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	MonthlyProfit   decimal.Decimal `json:"monthlyProfit"`
	CashInHand      decimal.Decimal `json:"cashInHand"`
	PendingReceipts decimal.Decimal `json:"pendingReceipts"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
}
