package models

import "testing"

func TestKindNames(t *testing.T) {
	want := []string{"Fleetvehicle", "Claim", "Testimonial", "Post", "Contactmessage"}
	got := KindNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestKind_Collection(t *testing.T) {
	cases := map[Kind]string{
		KindFleetVehicle:   "fleetvehicle",
		KindClaim:          "claim",
		KindTestimonial:    "testimonial",
		KindPost:           "post",
		KindContactMessage: "contactmessage",
	}
	for kind, want := range cases {
		if got := kind.Collection(); got != want {
			t.Errorf("%s: expected collection %s, got %s", kind, want, got)
		}
	}
}

func TestDefaults(t *testing.T) {
	tm := NewTestimonial()
	if tm.Rating == nil || *tm.Rating != DefaultRating {
		t.Errorf("expected default rating %d", DefaultRating)
	}
	if p := NewPost(); p.Published == nil || !*p.Published {
		t.Error("expected new post to be published")
	}
}
