package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRow_ScansStaffContact(t *testing.T) {
	var row snapshotRow
	dst := row.dst()

	columns := selectList(snapshotColumns)
	require.Len(t, dst, len(columns))

	emailAt := -1
	for i, target := range dst {
		if target == any(&row.staff.Email) {
			emailAt = i
		}
	}
	require.NotEqual(t, -1, emailAt, "Staff.Email is not scanned")
	assert.Equal(t, "s.email", strings.TrimSpace(columns[emailAt]))
}

func TestSnapshotRow_ColumnsMatchTargets(t *testing.T) {
	var row snapshotRow
	dst := row.dst()
	columns := selectList(snapshotColumns)

	expected := map[string]any{
		"s.full_name": &row.staff.FullName,
		"s.role":      &row.staff.Role,
		"s.group_id":  &row.staff.GroupID,
		"s.is_intern": &row.staff.IsIntern,
		"s.is_active": &row.staff.IsActive,
		"g.name":      &row.groupName,
	}
	for i, column := range columns {
		if target, ok := expected[strings.TrimSpace(column)]; ok {
			assert.Same(t, target, dst[i], column)
		}
	}
}

// selectList splits a column list on top-level commas.
func selectList(columns string) []string {
	var (
		list  []string
		depth int
		start int
	)
	for i, c := range columns {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				list = append(list, strings.TrimSpace(columns[start:i]))
				start = i + 1
			}
		}
	}
	return append(list, strings.TrimSpace(columns[start:]))
}
