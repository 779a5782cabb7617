package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/DaliGabriel/yo-compro/internal/adapter/email"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
)

const matchEmailSubject = "¡Encontramos un carro que coincide con tu búsqueda!"

// NotifierService fans a matched listing out to every interested buyer.
type NotifierService interface {
	NotifyAll(ctx context.Context, listing *entity.SellerListing, matches []entity.BuyerRequest) []entity.DeliveryOutcome
}

type notifierService struct {
	sender email.EmailSender
	log    logger.Logger
}

func NewNotifierService(sender email.EmailSender, log logger.Logger) NotifierService {
	return &notifierService{
		sender: sender,
		log:    log,
	}
}

func composeMatchEmail(listing *entity.SellerListing) string {
	return fmt.Sprintf(`<h1>¡Buenas noticias!</h1>
<p>Hemos encontrado un carro que coincide con tu búsqueda:</p>
<ul>
  <li>Marca: %s</li>
  <li>Modelo: %s</li>
  <li>Año: %s</li>
  <li>Precio: $%s</li>
</ul>
<p>Contacto del vendedor: %s</p>
<p>¡No pierdas esta oportunidad!</p>`,
		listing.Brand, listing.Model, listing.Year, listing.Price, listing.Contact)
}

// NotifyAll dispatches one email per match. Dispatches run concurrently and
// independently: each goroutine owns its own slot in the outcome slice, and
// a transport failure for one recipient never blocks the others. Failures
// are recorded, not retried.
func (s *notifierService) NotifyAll(ctx context.Context, listing *entity.SellerListing, matches []entity.BuyerRequest) []entity.DeliveryOutcome {
	outcomes := make([]entity.DeliveryOutcome, len(matches))
	body := composeMatchEmail(listing)

	var wg sync.WaitGroup
	for i, match := range matches {
		wg.Add(1)
		go func(i int, contact string) {
			defer wg.Done()

			if err := s.sender.Send(ctx, contact, matchEmailSubject, body); err != nil {
				s.log.Warnf("Failed to notify buyer %s about listing %s: %v", contact, listing.ID, err)
				outcomes[i] = entity.DeliveryOutcome{
					Contact:   contact,
					Delivered: false,
					Reason:    err.Error(),
				}
				return
			}
			outcomes[i] = entity.DeliveryOutcome{
				Contact:   contact,
				Delivered: true,
			}
		}(i, match.Contact)
	}
	wg.Wait()

	return outcomes
}
