package duedate_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/duedate"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.Local)
	day := func(offset int) time.Time {
		return model.DateOf(now).AddDate(0, 0, offset)
	}

	tests := []struct {
		name string
		due  time.Time
		want duedate.Classification
		text string
	}{
		{
			name: "due today is not overdue",
			due:  day(0),
			want: duedate.Classification{Level: duedate.DueSoon, Days: 0},
			text: "due today",
		},
		{
			name: "yesterday",
			due:  day(-1),
			want: duedate.Classification{Level: duedate.Overdue, Days: 1},
			text: "overdue by 1 day",
		},
		{
			name: "two weeks ago",
			due:  day(-14),
			want: duedate.Classification{Level: duedate.Overdue, Days: 14},
			text: "overdue by 14 days",
		},
		{
			name: "in five days",
			due:  day(5),
			want: duedate.Classification{Level: duedate.DueSoon, Days: 5},
			text: "5 days remaining",
		},
		{
			name: "window edge",
			due:  day(7),
			want: duedate.Classification{Level: duedate.DueSoon, Days: 7},
			text: "7 days remaining",
		},
		{
			name: "in ten days",
			due:  day(10),
			want: duedate.Classification{Level: duedate.Current},
			text: "on schedule",
		},
		{
			name: "time of day ignored",
			due:  time.Date(2024, time.March, 9, 23, 59, 0, 0, time.Local),
			want: duedate.Classification{Level: duedate.Overdue, Days: 1},
			text: "overdue by 1 day",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := duedate.Classify(tt.due, now)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.text, got.String())
		})
	}
}

func TestClassifyLoan(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	due := model.NewDate(2024, time.March, 1)

	active := model.Loan{Status: model.StatusActive, DueDate: due}
	c, ok := duedate.ClassifyLoan(active, now)
	require.True(t, ok)
	require.True(t, c.Overdue())
	require.Equal(t, 9, c.Days)
	require.True(t, duedate.IsOverdue(active, now))

	returned := model.Loan{Status: model.StatusReturned, DueDate: due}
	_, ok = duedate.ClassifyLoan(returned, now)
	require.False(t, ok)
	require.False(t, duedate.IsOverdue(returned, now))
}

func TestDaysBetween_AcrossMonth(t *testing.T) {
	t.Parallel()
	a := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	require.Equal(t, 2, duedate.DaysBetween(a, b))
	require.Equal(t, -2, duedate.DaysBetween(b, a))
}
