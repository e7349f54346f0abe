package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/prestige-car-hire/internal/models"
)

func validVehicle() map[string]any {
	return map[string]any{
		"make":         "Audi",
		"model":        "A4",
		"year":         float64(2021),
		"type":         "Saloon",
		"transmission": "Automatic",
		"fuel":         "Diesel",
		"seats":        float64(5),
		"daily_rate":   float64(59.5),
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	fields := make([]string, 0, len(verr.Details))
	for _, d := range verr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestBind_FleetVehicle_Valid(t *testing.T) {
	var v models.FleetVehicle
	err := Bind(validVehicle(), &v)
	require.NoError(t, err)
	require.NotNil(t, v.Make)
	assert.Equal(t, "Audi", *v.Make)
	assert.Equal(t, 2021, *v.Year)
	assert.Equal(t, 5, *v.Seats)
	require.NotNil(t, v.DailyRate)
	assert.Equal(t, 59.5, *v.DailyRate)
	assert.Nil(t, v.Colour)
	assert.Nil(t, v.Tags)
}

func TestBind_CoercesNumericStrings(t *testing.T) {
	in := validVehicle()
	in["year"] = "2019"
	in["seats"] = "7"
	in["daily_rate"] = "0"
	in["tags"] = []any{"family", "economy"}

	var v models.FleetVehicle
	require.NoError(t, Bind(in, &v))
	assert.Equal(t, 2019, *v.Year)
	assert.Equal(t, 7, *v.Seats)
	assert.Equal(t, 0.0, *v.DailyRate)
	assert.Equal(t, []string{"family", "economy"}, v.Tags)
}

func TestBind_YearOutOfRange(t *testing.T) {
	for _, year := range []float64{1989, 2101, 0} {
		in := validVehicle()
		in["year"] = year
		var v models.FleetVehicle
		err := Bind(in, &v)
		assert.Equal(t, []string{"year"}, fieldsOf(t, err), "year %v", year)
	}
}

func TestBind_ZeroIsARangeError(t *testing.T) {
	for _, field := range []string{"year", "seats"} {
		in := validVehicle()
		in[field] = float64(0)
		var v models.FleetVehicle
		err := Bind(in, &v)

		var verr *Error
		require.True(t, errors.As(err, &verr), field)
		require.Len(t, verr.Details, 1)
		assert.Equal(t, field, verr.Details[0].Field)
		assert.Equal(t, "gte", verr.Details[0].Type)
	}
}

func TestBind_NullRequiredField(t *testing.T) {
	in := validVehicle()
	in["make"] = nil
	var v models.FleetVehicle

	err := Bind(in, &v)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 1)
	assert.Equal(t, "make", verr.Details[0].Field)
	assert.Equal(t, "required", verr.Details[0].Type)
}

func TestBind_EmptyStringsArePresent(t *testing.T) {
	var m models.ContactMessage
	require.NoError(t, Bind(map[string]any{"name": "", "email": "a@b.co", "message": ""}, &m))
	require.NotNil(t, m.Name)
	assert.Equal(t, "", *m.Name)
	assert.Equal(t, "", *m.Message)

	in := validVehicle()
	in["make"] = ""
	in["fuel"] = ""
	var v models.FleetVehicle
	require.NoError(t, Bind(in, &v))
	assert.Equal(t, "", *v.Make)
}

func TestBind_StringFieldsRejectOtherTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"boolean", "model", true},
		{"integer", "make", float64(123)},
		{"float", "fuel", 1.5},
		{"boolean in list", "tags", []any{"family", false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validVehicle()
			in[tt.field] = tt.value
			var v models.FleetVehicle

			err := Bind(in, &v)

			var verr *Error
			require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
			require.Len(t, verr.Details, 1)
			assert.Contains(t, verr.Details[0].Field, tt.field)
			assert.Equal(t, "type", verr.Details[0].Type)
		})
	}
}

func TestBind_MissingRequired(t *testing.T) {
	in := validVehicle()
	delete(in, "make")
	delete(in, "daily_rate")

	var v models.FleetVehicle
	err := Bind(in, &v)
	assert.ElementsMatch(t, []string{"make", "daily_rate"}, fieldsOf(t, err))
}

func TestBind_NegativeRate(t *testing.T) {
	in := validVehicle()
	in["daily_rate"] = float64(-1)
	var v models.FleetVehicle
	assert.Equal(t, []string{"daily_rate"}, fieldsOf(t, Bind(in, &v)))
}

func TestBind_NonNumericString(t *testing.T) {
	in := validVehicle()
	in["seats"] = "lots"
	var v models.FleetVehicle
	assert.Equal(t, []string{"seats"}, fieldsOf(t, Bind(in, &v)))
}

func TestBind_FractionalInteger(t *testing.T) {
	in := validVehicle()
	in["year"] = 2020.5
	var v models.FleetVehicle
	assert.Equal(t, []string{"year"}, fieldsOf(t, Bind(in, &v)))
}

func TestBind_Email(t *testing.T) {
	in := map[string]any{"name": "Jo", "email": "not-an-email", "message": "hi"}
	var m models.ContactMessage
	err := Bind(in, &m)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 1)
	assert.Equal(t, "email", verr.Details[0].Field)
	assert.Equal(t, "email", verr.Details[0].Type)
}

func TestBind_TestimonialRating(t *testing.T) {
	tm := models.NewTestimonial()
	require.NoError(t, Bind(map[string]any{"name": "Sam", "content": "Great"}, tm))
	assert.Equal(t, 5, *tm.Rating)

	tm = models.NewTestimonial()
	require.NoError(t, Bind(map[string]any{"name": "Sam", "content": "Great", "rating": nil}, tm))
	assert.Nil(t, tm.Rating)
	assert.Equal(t, models.DefaultRating, *models.NewTestimonial().Rating)

	tm = models.NewTestimonial()
	require.NoError(t, Bind(map[string]any{"name": "Sam", "content": "Great", "rating": float64(3)}, tm))
	assert.Equal(t, 3, *tm.Rating)

	for _, rating := range []float64{0, 6} {
		tm = models.NewTestimonial()
		err := Bind(map[string]any{"name": "Sam", "content": "Great", "rating": rating}, tm)
		assert.Equal(t, []string{"rating"}, fieldsOf(t, err))
	}
}

func TestBind_PostPublishedDefault(t *testing.T) {
	p := models.NewPost()
	require.NoError(t, Bind(map[string]any{"title": "T", "slug": "t", "content": "c"}, p))
	assert.True(t, *p.Published)

	p = models.NewPost()
	require.NoError(t, Bind(map[string]any{"title": "T", "slug": "t", "content": "c", "published": false}, p))
	assert.False(t, *p.Published)

	p = models.NewPost()
	require.NoError(t, Bind(map[string]any{"title": "T", "slug": "t", "content": "c", "published": "false"}, p))
	assert.False(t, *p.Published)

	p = models.NewPost()
	err := Bind(map[string]any{"title": "T", "slug": "t", "content": "c", "published": nil}, p)
	assert.Equal(t, []string{"published"}, fieldsOf(t, err))
}

func TestBind_IgnoresUnknownKeys(t *testing.T) {
	in := map[string]any{"name": "Jo", "email": "jo@example.com", "message": "hi", "_id": "abc", "id": "x"}
	var m models.ContactMessage
	assert.NoError(t, Bind(in, &m))
}

func TestError_Message(t *testing.T) {
	err := &Error{Details: []FieldError{{Field: "year", Message: "too old"}}}
	assert.Equal(t, "validation failed: year: too old", err.Error())
}
