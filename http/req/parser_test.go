package req_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
)

func TestParserDecodeValues(t *testing.T) {
	// Arrange
	parser := req.NewParser()
	u := make(url.Values)

	// Act
	err := parser.DecodeValues(u, struct{}{})

	// Assert
	require.ErrorIs(t, err, reqarg.ErrBadConfig)

	// Arrange
	u.Set("a", "test")

	// Act
	err = parser.DecodeValues(u, new(struct {
		A struct{} `schema:"a"`
	}))

	// Assert
	require.ErrorIs(t, err, reqarg.ErrBadConfig)

	// Arrange
	type test struct {
		A string   `schema:"a"`
		B int64    `schema:"b"`
		C []string `schema:"c"`
		D string   `schema:"-"`
	}

	u.Set("b", "test")
	u.Set("d", "ignore")
	actual := new(test)

	var fieldErrs req.FieldErrors
	expected := req.FieldErrors{{
		Field: "b",
		Got:   "bad value at index 0",
		Rule:  "must be int64",
	}}

	// Act
	err = parser.DecodeValues(u, actual)

	// Assert
	require.ErrorIs(t, err, reqarg.ErrNotValid)
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, expected, fieldErrs)
	require.Equal(t, "test", actual.A)
	require.Zero(t, actual.B)

	// Arrange
	u.Set("b", "20")
	u.Add("c", "1")
	u.Add("c", "2")
	actual = new(test)

	// Act
	err = parser.DecodeValues(u, actual)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "test", actual.A)
	require.Equal(t, int64(20), actual.B)
	require.Equal(t, []string{"1", "2"}, actual.C)
	require.Equal(t, "", actual.D)
}

func TestFieldErrorsError(t *testing.T) {
	// Arrange
	var v req.FieldErrors

	// Act
	actual := v.Error()

	// Assert
	require.Zero(t, actual)

	// Arrange
	v = append(
		v,
		req.FieldError{Field: "first", Rule: "required"},
		req.FieldError{Field: "second", Got: "bad value at index 0", Rule: "must be int"},
	)

	expected := strings.Join([]string{
		`field="first" rule="required" got="<nil>"`,
		`field="second" rule="must be int" got="bad value at index 0"`,
	}, "\n")

	// Act
	actual = v.Error()

	// Assert
	require.Equal(t, expected, actual)
}

func TestFieldErrorsMarshalJSON(t *testing.T) {
	// Arrange
	var v req.FieldErrors

	// Act
	actual, err := json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "{}", string(actual))

	// Arrange
	v = append(v, req.FieldError{Field: "first", Rule: "required", Got: ""})

	// Act
	actual, err = json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"fieldErrors":[{"field":"first","got":"","rule":"required"}]}`, string(actual))
}
