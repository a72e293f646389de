package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_UnmarshalRichShape(t *testing.T) {
	body := `{"id": 12, "name": "Casa Quebrada", "location": "Cordoba", "price": 95.5,
		"bedrooms": 3, "bathrooms": 2, "rating": 4.8, "description": "Cerca del río",
		"amenities": ["Wifi", "Pool"], "image": "https://img/1.jpg"}`

	var p Property
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Equal(t, PropertyID("12"), p.ID)
	assert.Equal(t, "Casa Quebrada", p.Name)
	assert.Equal(t, 95.5, p.Price)
	assert.Equal(t, []string{"Wifi", "Pool"}, p.Amenities)
	assert.True(t, p.HasAmenities())
}

func TestProperty_UnmarshalMinimalShape(t *testing.T) {
	var p Property
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc-1","title":"Loft","location":"Rosario","price":60}`), &p))
	assert.Equal(t, PropertyID("abc-1"), p.ID)
	assert.Equal(t, "Loft", p.Name)
	assert.Equal(t, PlaceholderImage, p.ImageOrPlaceholder())
}

func TestPropertyID_Marshal(t *testing.T) {
	b, err := json.Marshal(Booking{PropertyID: "12", CheckInDate: "2024-08-20", CheckOutDate: "2024-08-23", Guests: 1, TotalPrice: 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"propertyId":12,"checkInDate":"2024-08-20","checkOutDate":"2024-08-23","guests":1,"totalPrice":300}`, string(b))

	b, err = json.Marshal(PropertyID("abc-1"))
	require.NoError(t, err)
	assert.Equal(t, `"abc-1"`, string(b))
}

func TestPropertyID_NonCanonicalNumbersStayStrings(t *testing.T) {
	for _, id := range []string{"007", "0042", "+5", "-0", "99999999999999999999"} {
		var b Booking
		require.NoError(t, json.Unmarshal([]byte(`{"propertyId":"`+id+`"}`), &b))
		assert.Equal(t, PropertyID(id), b.PropertyID)

		out, err := json.Marshal(b)
		require.NoError(t, err, id)

		var back Booking
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, PropertyID(id), back.PropertyID)
	}

	out, err := json.Marshal(Property{ID: "+5", Name: "Loft"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"+5"`)

	out, err = json.Marshal(PropertyID("-3"))
	require.NoError(t, err)
	assert.Equal(t, `-3`, string(out))
}
