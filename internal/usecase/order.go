package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

// BookingReferencePrefix prefixes every locally synthesized booking reference.
const BookingReferencePrefix = "NEON-"

// SynthesizeOrder creates a confirmed order without contacting the upstream.
// The booking reference is NEON- followed by four digits in 1000-9999.
func SynthesizeOrder(clock timeutil.Clock) *domain.Order {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &domain.Order{
		ID:               "ord_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		BookingReference: fmt.Sprintf("%s%d", BookingReferencePrefix, 1000+rand.IntN(9000)),
		Status:           domain.OrderConfirmed,
		CreatedAt:        clock.Now().UTC().Format(time.RFC3339),
	}
}
