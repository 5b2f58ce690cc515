// Package pricing computes order totals from line items and an order-level discount.
//
// All arithmetic is exact: unit prices carry at most two fraction digits and
// percent discounts add two more, so nothing is rounded here. Rounding to
// cents is done once, by Round, when amounts leave the service.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type Line struct {
	UnitPrice       decimal.Decimal
	Quantity        int
	DiscountPercent int
}

type LineTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

type Totals struct {
	Lines         []LineTotals
	Subtotal      decimal.Decimal
	ItemDiscounts decimal.Decimal
	OrderDiscount decimal.Decimal
	TotalDiscount decimal.Decimal
	Total         decimal.Decimal
}

func Calculate(lines []Line, orderDiscount decimal.Decimal) Totals {
	totals := Totals{
		Lines:         make([]LineTotals, 0, len(lines)),
		Subtotal:      decimal.Zero,
		ItemDiscounts: decimal.Zero,
		OrderDiscount: orderDiscount,
	}

	for _, l := range lines {
		lt := CalculateLine(l)
		totals.Lines = append(totals.Lines, lt)
		totals.Subtotal = totals.Subtotal.Add(lt.Subtotal)
		totals.ItemDiscounts = totals.ItemDiscounts.Add(lt.Discount)
	}

	// скидка на заказ применяется после скидок по позициям
	totals.TotalDiscount = totals.ItemDiscounts.Add(orderDiscount)
	totals.Total = totals.Subtotal.Sub(totals.TotalDiscount)
	if totals.Total.IsNegative() {
		totals.Total = decimal.Zero
	}

	return totals
}

func CalculateLine(l Line) LineTotals {
	subtotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	discount := subtotal.Mul(decimal.NewFromInt(int64(l.DiscountPercent))).Div(hundred)
	return LineTotals{
		Subtotal: subtotal,
		Discount: discount,
		Final:    subtotal.Sub(discount),
	}
}

// Rounded converts exact totals to cents. Line and order totals are derived
// from the rounded parts, so the displayed amounts always add up.
func Rounded(t Totals) Totals {
	res := Totals{
		Lines:         make([]LineTotals, 0, len(t.Lines)),
		Subtotal:      decimal.Zero,
		ItemDiscounts: decimal.Zero,
		OrderDiscount: Round(t.OrderDiscount),
	}

	for _, l := range t.Lines {
		subtotal, discount := Round(l.Subtotal), Round(l.Discount)
		res.Lines = append(res.Lines, LineTotals{
			Subtotal: subtotal,
			Discount: discount,
			Final:    subtotal.Sub(discount),
		})
		res.Subtotal = res.Subtotal.Add(subtotal)
		res.ItemDiscounts = res.ItemDiscounts.Add(discount)
	}

	res.TotalDiscount = res.ItemDiscounts.Add(res.OrderDiscount)
	res.Total = res.Subtotal.Sub(res.TotalDiscount)
	if res.Total.IsNegative() {
		res.Total = decimal.Zero
	}
	return res
}

// Round rounds an amount to cents for display.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ClampPercent keeps a discount percent within [0, 100].
func ClampPercent(p int) int {
	return max(0, min(100, p))
}
