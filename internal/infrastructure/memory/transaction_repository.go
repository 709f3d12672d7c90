package memory

import (
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

var (
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.TransactionRepository = (*transactionRepoTx)(nil)
)

// TransactionRepo implementación en memoria de TransactionRepository.
type TransactionRepo struct {
	s *Store
}

// NewTransactionRepository construye el adaptador sobre el store.
func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return createTransactionLocked(r.s, tx)
}

func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return listTransactionsLocked(r.s)
}

// transactionRepoTx variante sin lock para la unidad de trabajo.
type transactionRepoTx struct {
	s *Store
}

func (r *transactionRepoTx) Create(tx *entity.Transaction) error { return createTransactionLocked(r.s, tx) }
func (r *transactionRepoTx) List() ([]*entity.Transaction, error) {
	return listTransactionsLocked(r.s)
}

func createTransactionLocked(s *Store, tx *entity.Transaction) error {
	for _, existing := range s.transactions {
		if existing.ID == tx.ID {
			return domain.ErrConflict
		}
	}
	s.transactions = append(s.transactions, cloneTransaction(tx))
	return nil
}

func listTransactionsLocked(s *Store) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(s.transactions))
	for i := len(s.transactions) - 1; i >= 0; i-- {
		out = append(out, cloneTransaction(s.transactions[i]))
	}
	return out, nil
}
