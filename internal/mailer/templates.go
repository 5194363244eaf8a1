package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

// displayRate converts a unit price to the displayed currency. Line prices
// in the confirmation table are unitPrice * quantity * displayRate; the
// totals row shows the order's stored total verbatim.
const displayRate = 390

func linePrice(item domain.OrderItem) string {
	return decimal.NewFromFloat(item.UnitPrice).
		Mul(decimal.NewFromInt(int64(item.Quantity))).
		Mul(decimal.NewFromInt(displayRate)).
		String()
}

func renderPurchase(shopName string, order *domain.Order) (text, htmlBody string) {
	if len(order.Items) == 0 {
		text = fmt.Sprintf(
			"Thank you for shopping at %s!\n\nYou purchased %s, total %s.\n\nOrder ID: %s\n",
			shopName, order.ProductName, order.Total, order.ID,
		)
		htmlBody = fmt.Sprintf(
			"<h2>Thank you for shopping at %s!</h2><p>You purchased <b>%s</b>, total <b>%s</b>.</p><p>Order ID: %s</p>",
			html.EscapeString(shopName), html.EscapeString(order.ProductName),
			html.EscapeString(order.Total), html.EscapeString(order.ID),
		)
		return text, htmlBody
	}

	var t strings.Builder
	fmt.Fprintf(&t, "Thank you for shopping at %s!\n\nYour order:\n\n", shopName)
	fmt.Fprintf(&t, "%-24s %-10s %s\n", "Product", "Quantity", "Price")
	for _, item := range order.Items {
		fmt.Fprintf(&t, "%-24s %-10d %s\n", item.Name, item.Quantity, linePrice(item))
	}
	fmt.Fprintf(&t, "\nTotal: %s\n\nOrder ID: %s\n", order.Total, order.ID)

	var h strings.Builder
	fmt.Fprintf(&h, "<h2>Thank you for shopping at %s!</h2>", html.EscapeString(shopName))
	h.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	h.WriteString("<tr><th>Product</th><th>Quantity</th><th>Price</th></tr>")
	for _, item := range order.Items {
		fmt.Fprintf(&h, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
			html.EscapeString(item.Name), item.Quantity, linePrice(item))
	}
	fmt.Fprintf(&h, `<tr><td colspan="2"><b>Total</b></td><td><b>%s</b></td></tr>`,
		html.EscapeString(order.Total))
	h.WriteString("</table>")
	fmt.Fprintf(&h, "<p>Order ID: %s</p>", html.EscapeString(order.ID))

	return t.String(), h.String()
}

func renderCancellation(shopName, orderID, total string, byAdmin bool) (text, htmlBody string) {
	if byAdmin {
		text = fmt.Sprintf(
			"Your order %s (total %s) has been cancelled by an administrator of %s.\n\nIf you believe this was a mistake, please contact us.\n",
			orderID, total, shopName,
		)
		htmlBody = fmt.Sprintf(
			"<p>Your order <b>%s</b> (total <b>%s</b>) has been cancelled by an administrator of %s.</p><p>If you believe this was a mistake, please contact us.</p>",
			html.EscapeString(orderID), html.EscapeString(total), html.EscapeString(shopName),
		)
		return text, htmlBody
	}
	text = fmt.Sprintf(
		"Your order %s (total %s) has been cancelled as you requested.\n\nWe hope to see you again at %s.\n",
		orderID, total, shopName,
	)
	htmlBody = fmt.Sprintf(
		"<p>Your order <b>%s</b> (total <b>%s</b>) has been cancelled as you requested.</p><p>We hope to see you again at %s.</p>",
		html.EscapeString(orderID), html.EscapeString(total), html.EscapeString(shopName),
	)
	return text, htmlBody
}
