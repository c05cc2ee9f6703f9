package service_test

import (
	"strings"
	"testing"

	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_NormalizesCellsAndHeaders(t *testing.T) {
	input := strings.Join([]string{
		" Record Id , Account Name ,Email",
		"100, Acme Bio ,  jane@acme.test  ",
		"101,nan,NaN",
		"102,<NA>,na",
	}, "\n")

	table, err := service.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Record Id", "Account Name", "Email"}, table.Columns)
	require.Len(t, table.Rows, 3)

	// whitespace trimmed
	assert.Equal(t, "Acme Bio", *table.Rows[0].Get("Account Name"))
	assert.Equal(t, "jane@acme.test", *table.Rows[0].Get("Email"))

	// placeholder tokens become absent, case-insensitively
	assert.Nil(t, table.Rows[1].Get("Account Name"))
	assert.Nil(t, table.Rows[1].Get("Email"))
	assert.Nil(t, table.Rows[2].Get("Account Name"))
	assert.Nil(t, table.Rows[2].Get("Email"))
}

func TestParseCSV_DropsDuplicateRows(t *testing.T) {
	input := strings.Join([]string{
		"Record Id,Email",
		"100,jane@acme.test",
		"100,jane@acme.test",
		"100,other@acme.test",
	}, "\n")

	table, err := service.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	// the exact duplicate is dropped, the row differing in one cell stays
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "jane@acme.test", *table.Rows[0].Get("Email"))
	assert.Equal(t, "other@acme.test", *table.Rows[1].Get("Email"))
}

func TestParseCSV_DropsAllEmptyColumns(t *testing.T) {
	input := strings.Join([]string{
		"Record Id,Fax,Email",
		"100,,jane@acme.test",
		"101,nan,",
	}, "\n")

	table, err := service.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Record Id", "Email"}, table.Columns)
	assert.Nil(t, table.Rows[0].Get("Fax"))
	assert.Equal(t, "jane@acme.test", *table.Rows[0].Get("Email"))
	assert.Nil(t, table.Rows[1].Get("Email"))
}

func TestParseCSV_RaggedRowsYieldAbsentCells(t *testing.T) {
	input := strings.Join([]string{
		"Record Id,Account Name,Email",
		"100,Acme Bio",
	}, "\n")

	table, err := service.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Acme Bio", *table.Rows[0].Get("Account Name"))
	assert.Nil(t, table.Rows[0].Get("Email"))
}

func TestParseCSV_UnknownColumnIsAbsent(t *testing.T) {
	table, err := service.ParseCSV(strings.NewReader("Record Id\n100\n"))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Nil(t, table.Rows[0].Get("No Such Column"))
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := service.ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrEmptyCSV)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	table, err := service.ParseCSV(strings.NewReader("Record Id,Email\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	// with no rows every column is empty and dropped
	assert.Empty(t, table.Columns)
}
