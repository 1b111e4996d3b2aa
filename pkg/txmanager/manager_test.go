package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}
	sentinel := errors.New("storage: failed to execute query")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "raw 40001",
			err:  serialization,
			want: true,
		},
		{
			name: "other pq code",
			err:  deadlock,
			want: false,
		},
		{
			// Ошибка драйвера, обёрнутая репозиторием и usecase через %w,
			// должна распознаваться сквозь всю цепочку
			name: "40001 wrapped twice with %w",
			err:  fmt.Errorf("internal error: failed to get bookings: %w", fmt.Errorf("%w: ListWithFilter - execute query: %w", sentinel, serialization)),
			want: true,
		},
		{
			// Обёртка через %v рвёт цепочку errors.As - такие ошибки не
			// повторяются, поэтому репозитории оборачивают ошибки драйвера
			// только через %w
			name: "40001 wrapped with %v is not detected",
			err:  fmt.Errorf("%s: %v", sentinel, serialization),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
