package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-app/domain"
)

func newTestRegistry(t *testing.T) *FormRegistry {
	t.Helper()
	forms := NewFormRegistry(time.Minute)
	t.Cleanup(forms.Stop)
	return forms
}

func TestFormRegistry_LookupDoesNotCreate(t *testing.T) {
	forms := newTestRegistry(t)
	property := domain.Property{ID: "1", Price: 100}

	_, found := forms.Lookup("a", property.ID)
	assert.False(t, found)

	form := forms.Form("a", property)
	found2, ok := forms.Lookup("a", property.ID)
	require.True(t, ok)
	assert.Same(t, form, found2)

	_, found = forms.Lookup("a", "2")
	assert.False(t, found)
}

func TestFormSnapshot_GetDoesNotRegisterForm(t *testing.T) {
	api := newMockPropertyAPI()
	forms := newTestRegistry(t)
	svc := NewBookingService(api, forms, 65, testLogger)

	snap := svc.FormSnapshot("visitor", api.properties["1"])
	assert.Equal(t, "idle", snap.Status)
	assert.Equal(t, 100.0, snap.Rate)

	_, found := forms.Lookup("visitor", "1")
	assert.False(t, found)
}

func TestFormRegistry_PinnedFormSurvivesEviction(t *testing.T) {
	forms := newTestRegistry(t)
	property := domain.Property{ID: "1", Price: 100}

	form := forms.Form("a", property)
	require.NoError(t, form.Edit("2024-08-20", "2024-08-23", 2))
	_, err := form.BeginSubmit()
	require.NoError(t, err)
	release := forms.Pin("a", property.ID, form)

	// El LRU lo descarta mientras el envío sigue en curso
	forms.forms.Delete(formKey("a", property.ID))

	again := forms.Form("a", property)
	assert.Same(t, form, again)
	assert.Equal(t, domain.FormSubmitting, again.State().Status)

	require.NoError(t, form.Complete(nil))
	release()

	forms.forms.Delete(formKey("a", property.ID))
	_, found := forms.Lookup("a", property.ID)
	assert.False(t, found)
}

func TestFormRegistry_ReleaseRestoresResult(t *testing.T) {
	forms := newTestRegistry(t)
	property := domain.Property{ID: "1", Price: 100}

	form := forms.Form("a", property)
	require.NoError(t, form.Edit("2024-08-20", "2024-08-23", 2))
	_, err := form.BeginSubmit()
	require.NoError(t, err)
	release := forms.Pin("a", property.ID, form)

	forms.forms.Delete(formKey("a", property.ID))
	require.NoError(t, form.Complete(errors.New("boom")))
	release()

	found, ok := forms.Lookup("a", property.ID)
	require.True(t, ok)
	assert.Same(t, form, found)
	assert.Equal(t, domain.FormFailed, found.State().Status)
}

func TestSubmitForm_ReleasesPin(t *testing.T) {
	api := newMockPropertyAPI()
	forms := newTestRegistry(t)
	svc := NewBookingService(api, forms, 65, testLogger)

	_, err := svc.SubmitForm(context.Background(), "a", api.properties["1"], FormInput{CheckIn: "2024-08-20", CheckOut: "2024-08-23", Guests: 2})
	require.NoError(t, err)

	forms.mu.Lock()
	assert.Empty(t, forms.inFlight)
	forms.mu.Unlock()

	snap := svc.FormSnapshot("a", api.properties["1"])
	assert.Equal(t, "success", snap.Status)
}
