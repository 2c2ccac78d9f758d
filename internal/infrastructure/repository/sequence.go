package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nextSequential returns the next document number for a prefix, e.g.
// "SAL-0007" after "SAL-0006". The scan includes soft-deleted rows so a
// deleted document's number is never reissued.
func nextSequential(db *gorm.DB, table, column string, userID uuid.UUID, prefix string) (string, error) {
	var numbers []string
	err := db.Table(table).
		Unscoped().
		Select(column).
		Where("user_id = ?", userID).
		Where(column+" LIKE ?", prefix+"-%").
		Pluck(column, &numbers).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%04d", prefix, maxSequence(numbers, prefix)+1), nil
}

// maxSequence returns the highest numeric suffix among the document numbers.
// The comparison is numeric, not lexicographic: "SAL-10000" beats "SAL-9999".
func maxSequence(numbers []string, prefix string) int {
	max := 0
	for _, number := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(number, prefix+"-"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
