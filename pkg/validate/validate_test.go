package validate_test

import (
	"errors"
	"testing"

	"github.com/Astemirdum/reading-tracker/pkg/validate"
	"github.com/stretchr/testify/require"
)

type sessionInput struct {
	StartPage  int    `json:"startPage" validate:"gte=1"`
	EndPage    int    `json:"endPage" validate:"gtefield=StartPage"`
	Reflection string `json:"reflection" validate:"notblank"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	tests := []struct {
		name    string
		input   sessionInput
		wantMsg string
	}{
		{name: "ok", input: sessionInput{StartPage: 1, EndPage: 10, Reflection: "good"}},
		{name: "start below one", input: sessionInput{StartPage: 0, EndPage: 10, Reflection: "x"}, wantMsg: "startPage must satisfy gte=1"},
		{name: "end before start", input: sessionInput{StartPage: 5, EndPage: 4, Reflection: "x"}, wantMsg: "endPage must satisfy gtefield=StartPage"},
		{name: "blank reflection", input: sessionInput{StartPage: 1, EndPage: 1, Reflection: " \n\t"}, wantMsg: "reflection must satisfy notblank"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.input)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.wantMsg, validate.Message(err))
		})
	}
}

func TestMessage_PlainError(t *testing.T) {
	t.Parallel()
	require.Equal(t, "boom", validate.Message(errors.New("boom")))
}
