// Package calendar merges the independent schedulable entities into one
// chronological timeline for the month view.
package calendar

import (
	"sort"

	"github.com/soloflowhq/soloflow-api/internal/models"
)

type Kind string

const (
	KindBooking    Kind = "booking"
	KindEvent      Kind = "event"
	KindTaskDue    Kind = "task_due"
	KindInvoiceDue Kind = "invoice_due"
)

type Item struct {
	Kind   Kind   `json:"kind"`
	RefID  uint   `json:"ref_id"`
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

// MonthView flattens bookings, events, task due dates and invoice due dates
// into one list ordered by date, all-day items first within a day. Inputs
// are assumed to be pre-filtered to the month; canceled/declined bookings
// are skipped here so the timeline only shows live entries.
func MonthView(
	bookings []models.Booking,
	events []models.Event,
	tasks []models.Task,
	invoices []models.Invoice,
) []Item {

	items := make([]Item, 0, len(bookings)+len(events)+len(tasks)+len(invoices))

	for _, b := range bookings {
		if b.Status == "canceled" || b.Status == "declined" {
			continue
		}
		title := b.ClientName
		if title == "" && b.Client != nil {
			title = b.Client.Name
		}
		items = append(items, Item{
			Kind:   KindBooking,
			RefID:  b.ID,
			Date:   b.Date,
			Time:   b.Time,
			Title:  title,
			Status: b.Status,
		})
	}

	for _, e := range events {
		items = append(items, Item{
			Kind:  KindEvent,
			RefID: e.ID,
			Date:  e.Date,
			Time:  e.StartTime,
			Title: e.Title,
		})
	}

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		items = append(items, Item{
			Kind:   KindTaskDue,
			RefID:  t.ID,
			Date:   t.DueDate.Format("2006-01-02"),
			Title:  t.Title,
			Status: t.Status,
		})
	}

	for _, inv := range invoices {
		if inv.DueDate == nil {
			continue
		}
		items = append(items, Item{
			Kind:   KindInvoiceDue,
			RefID:  inv.ID,
			Date:   inv.DueDate.Format("2006-01-02"),
			Title:  inv.Number,
			Status: inv.Status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		// all-day entries ahead of timed ones
		if (items[i].Time == "") != (items[j].Time == "") {
			return items[i].Time == ""
		}
		return items[i].Time < items[j].Time
	})

	return items
}
