package usecase_test

import (
	"context"

	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// syncPost runs posted work immediately.
func syncPost(fn func()) { fn() }

var trustedOrigin = entity.Origin{Scheme: "https", Host: "chat.example.com", Port: 443}

const trustedURL = "https://chat.example.com"

// recorder collects the outcome of one capability request.
type recorder struct {
	granted [][]entity.Capability
	denied  int
}

func (r *recorder) Grant(caps []entity.Capability) { r.granted = append(r.granted, caps) }
func (r *recorder) Deny()                          { r.denied++ }

func (r *recorder) resolutions() int { return len(r.granted) + r.denied }
