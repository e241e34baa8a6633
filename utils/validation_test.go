package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		{Field: "name", Rules: []Rule{
			Trim,
			MinLength(1, "name must be specified"),
			MaxLength(5, "name too long"),
			Escape,
		}},
		{Field: "qty", Rules: []Rule{
			Trim,
			MinLength(1, "qty must be specified"),
			MaxLength(3, "qty too long"),
		}},
	}
}

func TestSchemaValidate_CleansValues(t *testing.T) {
	clean, errs := testSchema().Validate(map[string]string{"name": "  a<b ", "qty": " 12 "})
	require.Empty(t, errs)
	assert.Equal(t, "a&lt;b", clean["name"])
	assert.Equal(t, "12", clean["qty"])
}

func TestSchemaValidate_CollectsEveryField(t *testing.T) {
	_, errs := testSchema().Validate(map[string]string{"name": "   ", "qty": "12345"})
	require.Len(t, errs, 2)

	assert.Equal(t, FieldError{Field: "name", Message: "name must be specified", Value: "", Location: "body"}, errs[0])
	assert.Equal(t, FieldError{Field: "qty", Message: "qty too long", Value: "12345", Location: "body"}, errs[1])
	assert.Equal(t, "name: name must be specified; qty: qty too long", errs.Error())
}

func TestSchemaValidate_MissingFieldsAreEmpty(t *testing.T) {
	_, errs := testSchema().Validate(map[string]string{})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "qty", errs[1].Field)
}

func TestSchemaValidate_LengthChecksRunBeforeEscape(t *testing.T) {
	// "<<<<<" is 5 characters before escaping and 20 after.
	clean, errs := testSchema().Validate(map[string]string{"name": "<<<<<", "qty": "1"})
	require.Empty(t, errs)
	assert.Equal(t, strings.Repeat("&lt;", 5), clean["name"])
}

func TestLengthRulesCountCharacters(t *testing.T) {
	_, err := MaxLength(3, "too long")("äöü")
	assert.NoError(t, err)

	_, err = MaxLength(3, "too long")("äöüß")
	assert.EqualError(t, err, "too long")

	v, err := MinLength(1, "empty")("")
	assert.EqualError(t, err, "empty")
	assert.Equal(t, "", v)
}

func TestEscape(t *testing.T) {
	got, err := Escape(`<a href="/x">Tom's & "Jerry"</a>` + "`\\")
	require.NoError(t, err)
	assert.Equal(t,
		"&lt;a href=&quot;&#x2F;x&quot;&gt;Tom&#x27;s &amp; &quot;Jerry&quot;&lt;&#x2F;a&gt;&#96;&#x5C;",
		got)
}
