package dto

import (
	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyPnLRowResponse is one month of the P&L report. Cumulative is the
// running net profit over the months so far; it is derived here, not stored.
type MonthlyPnLRowResponse struct {
	Month       string          `json:"month"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
	Cumulative  decimal.Decimal `json:"cumulative"`
}

// MonthlyPnLResponse is the full P&L report, months ascending.
type MonthlyPnLResponse struct {
	Rows   []MonthlyPnLRowResponse `json:"rows"`
	Totals struct {
		GrossProfit decimal.Decimal `json:"grossProfit"`
		Expenses    decimal.Decimal `json:"expenses"`
		NetProfit   decimal.Decimal `json:"netProfit"`
	} `json:"totals"`
}

// MonthlyRevenueRowResponse is one month of revenue and units sold.
type MonthlyRevenueRowResponse struct {
	Month     string          `json:"month"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int64           `json:"unitsSold"`
}

// TopSellingProductResponse is one row of the top-sellers report.
type TopSellingProductResponse struct {
	BatchID      string          `json:"batchID"`
	ProductName  string          `json:"productName"`
	TotalQty     int64           `json:"totalQty"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// LowStockAlertResponse flags a batch at or below the alert threshold.
type LowStockAlertResponse struct {
	BatchID      string `json:"batchID"`
	ProductName  string `json:"productName"`
	ClosingStock int64  `json:"closingStock"`
}

// DashboardKPIsResponse carries the current-month headline figures.
type DashboardKPIsResponse struct {
	TotalProducts   int64           `json:"totalProducts"`
	StockValue      decimal.Decimal `json:"stockValue"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	MonthlyProfit   decimal.Decimal `json:"monthlyProfit"`
	CashInHand      decimal.Decimal `json:"cashInHand"`
	PendingReceipts decimal.Decimal `json:"pendingReceipts"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
}

// ToMonthlyPnLResponse converts domain P&L rows, deriving the cumulative
// column and report totals.
func ToMonthlyPnLResponse(rows []domain.MonthlyPnLRow) MonthlyPnLResponse {
	response := MonthlyPnLResponse{
		Rows: make([]MonthlyPnLRowResponse, len(rows)),
	}
	cumulative := decimal.Zero
	totalGross := decimal.Zero
	totalExpenses := decimal.Zero
	for i, r := range rows {
		cumulative = cumulative.Add(r.NetProfit)
		totalGross = totalGross.Add(r.GrossProfit)
		totalExpenses = totalExpenses.Add(r.Expenses)
		response.Rows[i] = MonthlyPnLRowResponse{
			Month:       r.Month,
			GrossProfit: r.GrossProfit,
			Expenses:    r.Expenses,
			NetProfit:   r.NetProfit,
			Cumulative:  cumulative,
		}
	}
	response.Totals.GrossProfit = totalGross
	response.Totals.Expenses = totalExpenses
	response.Totals.NetProfit = totalGross.Sub(totalExpenses)
	return response
}

// ToMonthlyRevenueResponses converts domain monthly revenue rows.
func ToMonthlyRevenueResponses(rows []domain.MonthlyRevenueRow) []MonthlyRevenueRowResponse {
	responses := make([]MonthlyRevenueRowResponse, len(rows))
	for i, r := range rows {
		responses[i] = MonthlyRevenueRowResponse{
			Month:     r.Month,
			Revenue:   r.Revenue,
			UnitsSold: r.UnitsSold,
		}
	}
	return responses
}

// ToTopSellingProductResponses converts domain top-seller rows.
func ToTopSellingProductResponses(rows []domain.TopSellingProduct) []TopSellingProductResponse {
	responses := make([]TopSellingProductResponse, len(rows))
	for i, r := range rows {
		responses[i] = TopSellingProductResponse{
			BatchID:      r.BatchID,
			ProductName:  r.ProductName,
			TotalQty:     r.TotalQty,
			TotalRevenue: r.TotalRevenue,
		}
	}
	return responses
}

// ToLowStockAlertResponses converts domain low-stock alerts.
func ToLowStockAlertResponses(alerts []domain.LowStockAlert) []LowStockAlertResponse {
	responses := make([]LowStockAlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = LowStockAlertResponse{
			BatchID:      a.BatchID,
			ProductName:  a.ProductName,
			ClosingStock: a.ClosingStock,
		}
	}
	return responses
}

// ToDashboardKPIsResponse converts domain dashboard KPIs.
func ToDashboardKPIsResponse(k domain.DashboardKPIs) DashboardKPIsResponse {
	return DashboardKPIsResponse{
		TotalProducts:   k.TotalProducts,
		StockValue:      k.StockValue,
		MonthlyRevenue:  k.MonthlyRevenue,
		MonthlyProfit:   k.MonthlyProfit,
		CashInHand:      k.CashInHand,
		PendingReceipts: k.PendingReceipts,
		PendingPayments: k.PendingPayments,
	}
}
