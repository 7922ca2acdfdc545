package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard date and id
	date := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(date, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, int64(42), decodedID, "ID should match after decode")

	// Zero values
	zeroToken := EncodeToken(time.Time{}, 0)
	decodedZeroDate, decodedZeroID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero values should not return an error")
	assert.Equal(t, time.Time{}, decodedZeroDate)
	assert.Equal(t, int64(0), decodedZeroID)

	// Nanosecond precision survives the round trip
	now := time.Now().UTC()
	decodedNow, _, err := DecodeToken(EncodeToken(now, 7))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(EncodeMultiFieldToken("2023-05-15T00:00:00Z"))
	assert.Error(t, err, "Should return an error for a token without separator")
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken(EncodeMultiFieldToken("notadate", "3"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	_, _, err = DecodeToken(EncodeMultiFieldToken("2023-05-15T00:00:00Z", "x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	decodedFields, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	assert.NoError(t, err)
	assert.Equal(t, fields, decodedFields)

	// When splitting an empty string with strings.Split, we get a slice with one empty string
	decodedEmpty, err := DecodeMultiFieldToken(EncodeMultiFieldToken())
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, decodedEmpty)
}
