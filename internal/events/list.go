package events

import (
	"errors"
	"fmt"
	"strings"
)

// StorageKey is the key under which the event sequence is persisted
const StorageKey = "adminEvents"

// ErrIndexOutOfRange is returned by Edit and Delete for an index that does
// not address a record. The list is left untouched.
var ErrIndexOutOfRange = errors.New("event index out of range")

// Record is a user-entered calendar item. Identity is its position in the list.
type Record struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Form holds the two admin form inputs
type Form struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// State is the list together with the current form contents
type State struct {
	Records []Record `json:"records"`
	Form    Form     `json:"form"`
}

// Row is one rendered list entry. Index is the record's current position and
// is carried by both the edit and the delete control.
type Row struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

// Add appends a record when both the trimmed title and the date are present.
// On rejection the state is returned unchanged, including the form input.
func Add(s State, title, date string) (State, bool) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || date == "" {
		s.Form = Form{Title: title, Date: date}
		return s, false
	}

	records := make([]Record, 0, len(s.Records)+1)
	records = append(records, s.Records...)
	records = append(records, Record{Title: trimmed, Date: date})

	return State{Records: records}, true
}

// Delete removes the record at index
func Delete(s State, index int) (State, error) {
	if index < 0 || index >= len(s.Records) {
		return s, fmt.Errorf("delete %d of %d: %w", index, len(s.Records), ErrIndexOutOfRange)
	}
	s.Records = remove(s.Records, index)
	return s, nil
}

// Edit loads the record at index into the form and removes it from the list.
// The record only comes back when the form is submitted again through Add.
func Edit(s State, index int) (State, error) {
	if index < 0 || index >= len(s.Records) {
		return s, fmt.Errorf("edit %d of %d: %w", index, len(s.Records), ErrIndexOutOfRange)
	}
	rec := s.Records[index]
	return State{
		Records: remove(s.Records, index),
		Form:    Form{Title: rec.Title, Date: rec.Date},
	}, nil
}

// Rows renders one row per record in insertion order
func Rows(records []Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Index: i,
			Title: r.Title,
			Date:  r.Date,
			Label: fmt.Sprintf("%s (%s)", r.Title, r.Date),
		}
	}
	return rows
}

// remove returns a new slice without the element at i
func remove(records []Record, i int) []Record {
	out := make([]Record, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}
