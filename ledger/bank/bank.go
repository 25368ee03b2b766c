// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package bank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/algorand/go-deadlock"
	"github.com/gofrs/flock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/data/transactions/verify"
	"github.com/algorand/go-deposit-ledger/ledger/apply"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
	"github.com/algorand/go-deposit-ledger/logging"
	"github.com/algorand/go-deposit-ledger/protocol"
	"github.com/algorand/go-deposit-ledger/util/kvstore"
)

// Bank is a single-node ledger that stores accounts in a key-value store
// and executes signed transactions against them, one at a time.
type Bank struct {
	mu deadlock.Mutex

	log      logging.Logger
	cfg      config.Local
	params   config.ProgramParams
	db       kvstore.KVStore
	lock     *flock.Flock
	reg      prometheus.Registerer
	metrics  *bankMetrics
	programs map[basics.Address]program

	// slot is the number of the latest blockhash, recent holds the
	// accepted blockhashes oldest first.
	slot   uint64
	recent []crypto.Digest
}

// TxnResult describes an executed transaction. A failed transaction still
// pays its fee.
type TxnResult struct {
	ID   transactions.Txid
	Slot uint64
	Fee  uint64
	Logs []string
	Err  error
}

// TxnStatus is what the bank remembers about a processed transaction.
type TxnStatus struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Slot uint64 `codec:"slot"`
	Fee  uint64 `codec:"fee"`
	Err  string `codec:"err"`
}

// Open opens, and on first use creates, the bank stored under dataDir. Only
// one bank may hold a data directory at a time. A nil reg leaves the metrics
// unregistered.
func Open(dataDir string, cfg config.Local, log logging.Logger, reg prometheus.Registerer) (*Bank, error) {
	params, err := cfg.ProgramParams()
	if err != nil {
		return nil, err
	}
	if cfg.MaxRecentBlockhashes < 1 {
		return nil, fmt.Errorf("MaxRecentBlockhashes must be positive, got %d", cfg.MaxRecentBlockhashes)
	}

	b := &Bank{
		log:    log,
		cfg:    cfg,
		params: params,
		reg:    reg,
		programs: map[basics.Address]program{
			basics.SystemProgramAddress: systemProgram{},
			params.ProgramID:            depositProgram{proc: apply.MakeProcessor(params)},
		},
	}

	if !cfg.LedgerInMemory {
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, err
		}
		// only one bank may run against a data directory
		lockPath := filepath.Join(dataDir, config.LockFilename)
		fileLock := flock.New(lockPath)
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("unexpected failure in establishing %s: %w", config.LockFilename, err)
		}
		if !locked {
			return nil, fmt.Errorf("failed to lock %s; is another bank already running in %s?", config.LockFilename, dataDir)
		}
		b.lock = fileLock
	}

	b.db, err = kvstore.NewKVStore(cfg.LedgerBackend, cfg.LedgerPath(dataDir), cfg.LedgerInMemory)
	if err != nil {
		b.unlock()
		return nil, err
	}

	b.metrics, err = makeBankMetrics(reg)
	if err == nil {
		err = b.loadBlockhashes()
	}
	if err == nil && len(b.recent) == 0 {
		err = b.genesis()
	}
	if err != nil {
		b.Close()
		return nil, err
	}
	b.metrics.slot.Set(float64(b.slot))
	b.log.Infof("bank opened at slot %d with %s backend", b.slot, cfg.LedgerBackend)
	return b, nil
}

// Close releases the store and the data directory lock.
func (b *Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.db != nil {
		err = b.db.Close()
		b.db = nil
		if err != nil {
			b.log.Warnf("closing %s store: %v", b.cfg.LedgerBackend, err)
		}
	}
	if b.metrics != nil {
		b.metrics.unregister(b.reg)
		b.metrics = nil
	}
	b.unlock()
	return err
}

func (b *Bank) unlock() {
	if b.lock != nil {
		if err := b.lock.Unlock(); err != nil {
			b.log.Warnf("releasing %s: %v", config.LockFilename, err)
		}
		b.lock = nil
	}
}

// Params returns the deposit program parameters the bank runs with.
func (b *Bank) Params() config.ProgramParams {
	return b.params
}

// genesis seeds the built-in accounts and the first blockhash.
func (b *Bank) genesis() error {
	builtins := map[basics.Address]ledgercore.Account{
		basics.SystemProgramAddress: {Lamports: 1, Executable: true},
		b.params.ProgramID:          {Lamports: 1, Executable: true},
		basics.RentSysvarAddress: {
			Lamports: b.params.Rent.MinimumBalance(ledgercore.RentSysvarLen),
			Data:     ledgercore.EncodeRentSysvar(b.params.Rent),
		},
	}

	batch := b.db.NewBatch()
	for addr, acct := range builtins {
		acct := acct
		if err := batch.Set(accountKey(addr), protocol.EncodeReflect(&acct)); err != nil {
			batch.Cancel()
			return err
		}
	}
	hash := crypto.HashParts([]byte(protocol.BlockHash), []byte("genesis"), b.params.ProgramID[:])
	if err := batch.Set(blockhashKey(0), hash[:]); err != nil {
		batch.Cancel()
		return err
	}
	if err := batch.Commit(); err != nil {
		return err
	}
	b.slot = 0
	b.recent = []crypto.Digest{hash}
	b.log.Infof("created genesis for program %v", b.params.ProgramID)
	return nil
}

func (b *Bank) loadBlockhashes() error {
	it := b.db.NewIterator([]byte(kvPrefixBlockhash), kvstore.PrefixEnd([]byte(kvPrefixBlockhash)))
	defer it.Close()
	for ; it.Valid(); it.Next() {
		slot, err := splitBlockhashKey(it.Key())
		if err != nil {
			return err
		}
		value, err := it.Value()
		if err != nil {
			return err
		}
		var hash crypto.Digest
		if len(value) != len(hash) {
			return fmt.Errorf("blockhash for slot %d has %d bytes", slot, len(value))
		}
		copy(hash[:], value)
		b.slot = slot
		b.recent = append(b.recent, hash)
	}
	if len(b.recent) > b.cfg.MaxRecentBlockhashes {
		b.recent = b.recent[len(b.recent)-b.cfg.MaxRecentBlockhashes:]
	}
	return nil
}

// LatestBlockhash returns the blockhash new transactions should reference.
func (b *Bank) LatestBlockhash() crypto.Digest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recent[len(b.recent)-1]
}

// Slot returns the latest slot.
func (b *Bank) Slot() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slot
}

func (b *Bank) isRecent(hash crypto.Digest) bool {
	for _, h := range b.recent {
		if h == hash {
			return true
		}
	}
	return false
}

// advance writes the next blockhash into batch and returns it with its slot,
// dropping the one that leaves the window. The in-memory window is updated
// by commitBlockhash once batch is committed.
func (b *Bank) advance(batch kvstore.BatchWriter) (uint64, crypto.Digest, error) {
	slot := b.slot + 1
	hash := crypto.HashParts([]byte(protocol.BlockHash), b.recent[len(b.recent)-1][:], bigEndianUint64(slot))
	if err := batch.Set(blockhashKey(slot), hash[:]); err != nil {
		return 0, crypto.Digest{}, err
	}
	if len(b.recent) >= b.cfg.MaxRecentBlockhashes {
		expired := slot - uint64(len(b.recent))
		if err := batch.Delete(blockhashKey(expired)); err != nil {
			return 0, crypto.Digest{}, err
		}
	}
	return slot, hash, nil
}

func (b *Bank) commitBlockhash(slot uint64, hash crypto.Digest) {
	b.slot = slot
	b.recent = append(b.recent, hash)
	if len(b.recent) > b.cfg.MaxRecentBlockhashes {
		b.recent = b.recent[len(b.recent)-b.cfg.MaxRecentBlockhashes:]
	}
}

func (b *Bank) lookup(addr basics.Address) (ledgercore.Account, error) {
	var acct ledgercore.Account
	value, err := b.db.Get(accountKey(addr))
	if errors.Is(err, kvstore.ErrNotFound) {
		return acct, nil
	}
	if err != nil {
		return acct, err
	}
	err = protocol.DecodeReflect(value, &acct)
	return acct, err
}

func writeAccount(batch kvstore.BatchWriter, addr basics.Address, acct *ledgercore.Account) error {
	if acct.IsEmpty() {
		return batch.Delete(accountKey(addr))
	}
	return batch.Set(accountKey(addr), protocol.EncodeReflect(acct))
}

// Account returns the state of addr. Unknown addresses are empty accounts.
func (b *Bank) Account(addr basics.Address) (ledgercore.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return ledgercore.Account{}, ErrClosed
	}
	return b.lookup(addr)
}

// Airdrop credits lamports to addr out of thin air and advances the slot.
func (b *Bank) Airdrop(addr basics.Address, lamports uint64) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return 0, ErrClosed
	}

	acct, err := b.lookup(addr)
	if err != nil {
		return 0, err
	}
	if acct.Executable {
		return 0, fmt.Errorf("cannot airdrop to executable account %v", addr)
	}
	balance, overflowed := basics.OAdd(acct.Lamports, lamports)
	if overflowed {
		return 0, basics.Annotate(fmt.Errorf("airdrop would overflow balance"), "account", addr, "balance", acct.Lamports, "amount", lamports)
	}
	acct.Lamports = balance

	batch := b.db.NewBatch()
	slot, hash, err := b.advance(batch)
	if err == nil {
		err = writeAccount(batch, addr, &acct)
	}
	if err != nil {
		batch.Cancel()
		return 0, err
	}
	if err := batch.Commit(); err != nil {
		return 0, err
	}
	b.commitBlockhash(slot, hash)
	b.metrics.lamportsMinted.Add(float64(lamports))
	b.metrics.slot.Set(float64(slot))
	b.log.WithFields(logging.Fields{"account": addr.String(), "lamports": lamports}).Infof("airdrop in slot %d", slot)
	return balance, nil
}

// Status returns what the bank recorded for a processed transaction.
func (b *Bank) Status(id transactions.Txid) (status TxnStatus, found bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return TxnStatus{}, false, ErrClosed
	}
	return b.status(id)
}

func (b *Bank) status(id transactions.Txid) (status TxnStatus, found bool, err error) {
	value, err := b.db.Get(txnStatusKey(id))
	if errors.Is(err, kvstore.ErrNotFound) {
		return TxnStatus{}, false, nil
	}
	if err != nil {
		return TxnStatus{}, false, err
	}
	err = protocol.DecodeReflect(value, &status)
	return status, err == nil, err
}

// Fee returns the fee stxn pays.
func (b *Bank) Fee(stxn transactions.SignedTxn) uint64 {
	return b.cfg.LamportsPerSignature * uint64(len(stxn.Signatures))
}

// Process verifies and executes stxn. Transactions with bad signatures,
// replays, stale blockhashes and fee payers that cannot cover the fee are
// rejected and leave no trace: the result is nil. Otherwise the fee is
// charged and the result is returned, with its Err also returned as the
// error when the instructions failed and their changes were discarded.
func (b *Bank) Process(stxn transactions.SignedTxn) (*TxnResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil, ErrClosed
	}

	res, err := b.process(stxn)
	if res == nil {
		b.metrics.rejected()
		b.log.With("tx", stxn.ID().String()).Infof("rejected transaction: %v", err)
		return nil, err
	}
	b.metrics.executed(res)
	return res, res.Err
}

func (b *Bank) process(stxn transactions.SignedTxn) (*TxnResult, error) {
	if err := verify.Txn(stxn); err != nil {
		return nil, err
	}
	id := stxn.ID()
	if _, found, err := b.status(id); err != nil {
		return nil, err
	} else if found {
		return nil, TransactionInLedgerError{Txid: id}
	}
	if !b.isRecent(stxn.Message.RecentBlockhash) {
		return nil, BlockhashNotFoundError{Blockhash: stxn.Message.RecentBlockhash}
	}

	st := &txnState{
		id:       id,
		msg:      stxn.Message,
		accounts: make(map[basics.Address]*ledgercore.Account),
		log:      b.log.With("tx", id.String()),
	}
	for _, addr := range st.addresses() {
		acct, err := b.lookup(addr)
		if err != nil {
			return nil, err
		}
		st.accounts[addr] = &acct
	}
	st.loaded = snapshotAccounts(st.accounts)

	fee := b.Fee(stxn)
	payer := st.accounts[stxn.Message.FeePayer]
	if payer.Lamports < fee || payer.Executable {
		return nil, InsufficientFeeError{Payer: stxn.Message.FeePayer, Balance: payer.Lamports, Fee: fee}
	}
	payer.Lamports -= fee
	st.checkpoint()

	execErr := b.execute(st)
	if execErr != nil {
		st.rollback()
	}

	batch := b.db.NewBatch()
	slot, hash, err := b.advance(batch)
	if err != nil {
		batch.Cancel()
		return nil, err
	}
	for addr, acct := range st.modified() {
		if err := writeAccount(batch, addr, acct); err != nil {
			batch.Cancel()
			return nil, err
		}
	}
	status := TxnStatus{Slot: slot, Fee: fee}
	if execErr != nil {
		status.Err = execErr.Error()
	}
	if err := batch.Set(txnStatusKey(id), protocol.EncodeReflect(&status)); err != nil {
		batch.Cancel()
		return nil, err
	}
	if err := batch.Commit(); err != nil {
		st.log.Errorf("commit of slot %d failed: %v", slot, err)
		return nil, err
	}
	b.commitBlockhash(slot, hash)

	if execErr != nil {
		st.log.Infof("transaction failed in slot %d: %v", slot, execErr)
	} else {
		st.log.Debugf("transaction succeeded in slot %d", slot)
	}
	return &TxnResult{
		ID:   id,
		Slot: slot,
		Fee:  fee,
		Logs: st.logs,
		Err:  execErr,
	}, nil
}
