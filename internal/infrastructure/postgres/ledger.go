// Package postgres implementa el StockLedger transaccional sobre la conexión directa
// a la base de Supabase (pgx).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-supabase/internal/application/inventory"
	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

var _ inventory.StockLedger = (*Ledger)(nil)

// Ledger registra la venta o el movimiento y ajusta el stock en una sola transacción.
// La fila del producto se bloquea (SELECT FOR UPDATE) y la suficiencia se vuelve a
// comprobar contra el stock bloqueado, no contra el snapshot.
type Ledger struct {
	tx *TxRunner
}

// NewLedger construye el ledger sobre un pool (o cualquier Beginner).
func NewLedger(db Beginner) *Ledger {
	return &Ledger{tx: NewTxRunner(db)}
}

// RecordSale implementa inventory.StockLedger.
func (l *Ledger) RecordSale(ctx context.Context, snapshot *entity.Product, sale *entity.Sale) (*entity.Sale, int, error) {
	var (
		created = *sale
		stock   int
	)
	err := l.tx.Run(ctx, func(q Querier) error {
		current, err := lockStock(ctx, q, snapshot.ID)
		if err != nil {
			return err
		}
		if sale.Quantity > current {
			return fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, current)
		}
		err = q.QueryRow(ctx, `
			INSERT INTO ventas (producto_id, usuario_id, cantidad, total, fecha_venta)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			snapshot.ID, sale.UserID, sale.Quantity, sale.Total, sale.SoldAt,
		).Scan(&created.ID)
		if err != nil {
			return wrapErr("insert venta", err)
		}
		stock = current - sale.Quantity
		return updateStock(ctx, q, snapshot.ID, stock)
	})
	if err != nil {
		return nil, 0, err
	}
	created.ProductID = snapshot.ID
	return &created, stock, nil
}

// RecordMovement implementa inventory.StockLedger.
func (l *Ledger) RecordMovement(ctx context.Context, snapshot *entity.Product, movement *entity.Movement) (*entity.Movement, int, error) {
	var (
		created = *movement
		stock   int
	)
	err := l.tx.Run(ctx, func(q Querier) error {
		current, err := lockStock(ctx, q, snapshot.ID)
		if err != nil {
			return err
		}
		if movement.Delta() > 0 && current > math.MaxInt-movement.Delta() {
			return fmt.Errorf("%w: el stock resultante desborda", domain.ErrInvalidInput)
		}
		stock = current + movement.Delta()
		if stock < 0 {
			return fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, current)
		}
		err = q.QueryRow(ctx, `
			INSERT INTO movimientos_inventario (producto_id, tipo, cantidad, observacion, fecha_movimiento)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			snapshot.ID, movement.Type, movement.Quantity, movement.Observation, movement.MovedAt,
		).Scan(&created.ID)
		if err != nil {
			return wrapErr("insert movimiento", err)
		}
		return updateStock(ctx, q, snapshot.ID, stock)
	})
	if err != nil {
		return nil, 0, err
	}
	created.ProductID = snapshot.ID
	return &created, stock, nil
}

// lockStock bloquea la fila del producto hasta el fin de la transacción.
func lockStock(ctx context.Context, q Querier, productID int64) (int, error) {
	var stock int
	err := q.QueryRow(ctx, `SELECT stock FROM productos WHERE id = $1 FOR UPDATE`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
		}
		return 0, wrapErr("lock stock", err)
	}
	return stock, nil
}

func updateStock(ctx context.Context, q Querier, productID int64, stock int) error {
	tag, err := q.Exec(ctx, `UPDATE productos SET stock = $2 WHERE id = $1`, productID, stock)
	if err != nil {
		return wrapErr("update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	return nil
}

// wrapErr traduce errores de PostgreSQL a errores de dominio.
func wrapErr(op string, err error) error {
	switch {
	case isCheckViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInsufficientStock, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackend, err)
	}
}
