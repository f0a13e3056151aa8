package contact

import (
	"context"
)

type Mailer interface {
	Send(ctx context.Context, params map[string]string) error
}
