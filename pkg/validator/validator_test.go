package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type signupInput struct {
	Username string `json:"username" validate:"required,max=5"`
	Email    string `json:"email" validate:"omitempty,email"`
	Seats    int    `json:"max_players" validate:"gte=1,lte=100"`
}

func TestParseErrorUsesJSONNames(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	err := v.Struct(signupInput{Username: "toolongname", Email: "nope", Seats: 0})
	got := ParseError(err)

	tests := []struct {
		field string
		want  string
	}{
		{field: "username", want: "Ensure this field has no more than 5 characters."},
		{field: "email", want: "Enter a valid email address."},
		{field: "max_players", want: "Ensure this value is greater than or equal to 1."},
	}
	for _, tc := range tests {
		msgs := got[tc.field]
		if len(msgs) != 1 || msgs[0] != tc.want {
			t.Fatalf("%s = %v, want [%q]", tc.field, msgs, tc.want)
		}
	}
}

func TestParseErrorNonField(t *testing.T) {
	t.Parallel()

	got := ParseError(errors.New("unexpected EOF"))
	if msgs := got[NonFieldErrorsKey]; len(msgs) != 1 || msgs[0] != "unexpected EOF" {
		t.Fatalf("non_field_errors = %v", msgs)
	}
	if len(ParseError(nil)) != 0 {
		t.Fatal("ParseError(nil) should be empty")
	}
}
