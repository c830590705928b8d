// Package order contiene los casos de uso del catálogo (mesas, ingredientes, platos) y de pedidos.
//
// Las escrituras de varias filas (alta de plato con ingredientes, alta de pedido con líneas,
// cambios de estado) corren dentro de TxRunner.RunOrder: o se confirman todas o ninguna.
package order

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// UseCase agrupa las operaciones sobre el catálogo y los pedidos de un client.
type UseCase struct {
	repos    Repos
	tx       TxRunner
	clients  repository.ClientRepository
	renderer TicketRenderer
	now      func() time.Time
}

// NewUseCase construye el caso de uso. repos se usa fuera de transacción; tx para los agregados.
// renderer puede ser nil si no se exponen comandas.
func NewUseCase(repos Repos, tx TxRunner, clients repository.ClientRepository, renderer TicketRenderer) *UseCase {
	return &UseCase{repos: repos, tx: tx, clients: clients, renderer: renderer, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}
