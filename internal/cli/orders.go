package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"orderdeck/internal/board"
)

// List renders the order table in fetch order. Presentation only; all
// derived values come from the board's view helpers.
func (a *App) List(ctx context.Context) error {
	orders := a.board.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tEMAIL\tCITY\tDATE\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s (%s)\n",
			o.ID,
			board.DisplayName(o),
			o.Email,
			o.City,
			board.DisplayDate(o),
			board.DisplayTotal(o),
			o.Status,
			board.StatusTone(o.Status),
		)
	}
	return w.Flush()
}

// Show prints one order with its contact details and line items.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order id to show", a.out)
	if err != nil {
		return err
	}

	o, ok := a.board.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No order with that id is on the board.")
		return nil
	}

	fmt.Fprintf(a.out, "Order %s — %s (%s)\n", o.ID, board.DisplayName(o), o.Status)
	fmt.Fprintf(a.out, "  %s, %s, %s, %s\n", o.Email, o.Phone, o.Address, o.City)
	fmt.Fprintf(a.out, "  Placed %s, total %s\n", board.DisplayDate(o), board.DisplayTotal(o))
	for _, item := range o.Items {
		fmt.Fprintf(a.out, "  %d × %s @ %s\n", item.Quantity, item.Title, item.Price.StringFixed(2))
	}
	return nil
}

// Delete prompts for an id and hands it to the board's delete-confirmation
// protocol. Outcomes are surfaced by the board's notifications.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order id to delete", a.out)
	if err != nil {
		return err
	}
	return a.board.RequestDelete(ctx, id)
}

// Refresh re-fetches the order snapshot. This is the operator's manual
// recovery path after a failed load.
func (a *App) Refresh(ctx context.Context) error {
	return a.board.Load(ctx)
}
