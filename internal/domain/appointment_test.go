package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, NormalizeStatus("confirmed"))
	assert.Equal(t, StatusCanceled, NormalizeStatus("canceled"))

	// Нераспознанные и пустые значения приводятся к pending
	assert.Equal(t, StatusPending, NormalizeStatus("approved"))
	assert.Equal(t, StatusPending, NormalizeStatus(""))
}

func TestNormalizePaymentStatus(t *testing.T) {
	paid := NormalizePaymentStatus("paid")
	require.NotNil(t, paid)
	assert.Equal(t, PaymentPaid, *paid)

	assert.Nil(t, NormalizePaymentStatus("gold"))
	assert.Nil(t, NormalizePaymentStatus(""))
}

func TestAppointment_StartsOn(t *testing.T) {
	budapest, err := time.LoadLocation("Europe/Budapest")
	require.NoError(t, err)

	// 23:30 UTC это уже следующий день в Будапеште
	appt := &Appointment{
		ScheduledStart: time.Date(2026, 6, 10, 23, 30, 0, 0, time.UTC),
	}

	june10 := time.Date(2026, 6, 10, 0, 0, 0, 0, budapest)
	june11 := time.Date(2026, 6, 11, 0, 0, 0, 0, budapest)

	assert.False(t, appt.StartsOn(june10, budapest))
	assert.True(t, appt.StartsOn(june11, budapest))
	assert.True(t, appt.StartsOn(june10, time.UTC))
}

func TestAppointment_IsCanceled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusCanceled}).IsCanceled())
	assert.False(t, (&Appointment{Status: StatusPending}).IsCanceled())
}
