// Package gateway implements the Transaction Gateway (C6): the single
// coordinator that admits, serializes, queues, dispatches, and replies to
// every account operation. All of its state (slots, in-flight registry)
// lives inside one goroutine's stack (Run); nothing here is protected by a
// mutex because nothing outside that goroutine ever touches it.
package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielBlankenburg/exbanking-go/internal/bus"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/txlog"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/userstore"
	"github.com/gabrielBlankenburg/exbanking-go/internal/worker"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// RequestKind distinguishes the four submit shapes (spec.md §4.6.2).
type RequestKind int

const (
	KindDeposit RequestKind = iota
	KindWithdraw
	KindBalance
	KindSend
)

// Result is what a waiter receives: either Err is set, or Balances carries
// one entry (deposit/withdraw/balance) or two (send: from, to).
type Result struct {
	Err      *mmodel.Error
	Balances []int64
}

// submission is one admitted-or-rejected client request plus its one-shot
// reply channel (the "waiter" of spec.md §9).
type submission struct {
	kind     RequestKind
	user     string // sender, for send
	other    string // receiver, only for send
	currency string
	amount   int64
	reply    chan Result
}

// Gateway is the Transaction Gateway. Construct with New, then run its event
// loop with Run in its own goroutine before calling Submit.
type Gateway struct {
	users *userstore.Store
	log   *txlog.Log
	bus   bus.Bus
	logger mlog.Logger

	submitCh chan *submission

	slots    map[string]*slot
	inflight map[string]chan Result

	pendingAdvances []string
}

// New builds a Gateway over the given stores. bufferSize sizes the
// submission channel; the completion bus b comes in already sized.
func New(users *userstore.Store, log *txlog.Log, b bus.Bus, logger mlog.Logger, bufferSize int) *Gateway {
	return &Gateway{
		users:    users,
		log:      log,
		bus:      b,
		logger:   logger,
		submitCh: make(chan *submission, bufferSize),
		slots:    make(map[string]*slot),
		inflight: make(map[string]chan Result),
	}
}

// Run is the Gateway's single-threaded event loop. It processes one of
// {client submission, worker completion} to completion before the next, so
// every state transition below is atomic with respect to every other. It
// returns when ctx is canceled.
func (g *Gateway) Run(ctx context.Context) {
	for {
		select {
		case sub := <-g.submitCh:
			g.handleSubmit(sub)
			g.drainAdvances()
		case outcome := <-g.bus:
			g.handleCompletion(outcome)
			g.drainAdvances()
		case <-ctx.Done():
			return
		}
	}
}

// Deposit submits a deposit and blocks until the Gateway replies.
func (g *Gateway) Deposit(ctx context.Context, user, currency string, amount int64) Result {
	return g.submitAndWait(ctx, &submission{kind: KindDeposit, user: user, currency: currency, amount: amount})
}

// Withdraw submits a withdraw and blocks until the Gateway replies.
func (g *Gateway) Withdraw(ctx context.Context, user, currency string, amount int64) Result {
	return g.submitAndWait(ctx, &submission{kind: KindWithdraw, user: user, currency: currency, amount: amount})
}

// Balance submits a balance read and blocks until the Gateway replies.
func (g *Gateway) Balance(ctx context.Context, user, currency string) Result {
	return g.submitAndWait(ctx, &submission{kind: KindBalance, user: user, currency: currency})
}

// Send submits a transfer and blocks until the Gateway replies.
func (g *Gateway) Send(ctx context.Context, from, to, currency string, amount int64) Result {
	return g.submitAndWait(ctx, &submission{kind: KindSend, user: from, other: to, currency: currency, amount: amount})
}

func (g *Gateway) submitAndWait(ctx context.Context, sub *submission) Result {
	sub.reply = make(chan Result, 1)

	select {
	case g.submitCh <- sub:
	case <-ctx.Done():
		return Result{Err: mmodel.NewError(mmodel.ErrUnexpected, "gateway unavailable")}
	}

	select {
	case res := <-sub.reply:
		return res
	case <-ctx.Done():
		return Result{Err: mmodel.NewError(mmodel.ErrUnexpected, "caller canceled")}
	}
}

// getOrCreateSlot returns the slot for username, lazily creating it.
func (g *Gateway) getOrCreateSlot(username string) *slot {
	s, ok := g.slots[username]
	if !ok {
		s = newSlot(username)
		g.slots[username] = s
	}

	return s
}

func (g *Gateway) queueAdvance(username string) {
	g.pendingAdvances = append(g.pendingAdvances, username)
}

// drainAdvances runs advance() for every username queued during the current
// tick, including any further usernames queued by those advances, until the
// work list is empty. This is the "loop ... via the event queue" of
// spec.md §4.6.6. An advance queues its own slot again only after popping an
// entry from that slot's queue, and wakes waiters only when its slot turns
// available, so the work list drains.
func (g *Gateway) drainAdvances() {
	for len(g.pendingAdvances) > 0 {
		username := g.pendingAdvances[0]
		g.pendingAdvances = g.pendingAdvances[1:]
		g.advance(username)
	}
}

func (g *Gateway) handleSubmit(sub *submission) {
	if sub.kind == KindSend {
		g.admitSend(sub)
		return
	}

	g.admitSingle(sub)
}

// admitSingle implements spec.md §4.6.3 for deposit, withdraw, and balance.
func (g *Gateway) admitSingle(sub *submission) {
	s := g.getOrCreateSlot(sub.user)

	if s.status == statusAvailable {
		if !g.users.Exists(sub.user) {
			delete(g.slots, sub.user)
			sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrUserDoesNotExist, "user does not exist")}

			return
		}

		s.status = statusBusy
		s.pendingCount++
		g.run(s, sub)

		return
	}

	if s.pendingCount >= maxPending {
		sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrTooManyRequestsToUser, "too many requests to user")}
		return
	}

	s.queue = append(s.queue, sub)
	s.pendingCount++
}

// admitSend implements spec.md §4.6.4.
func (g *Gateway) admitSend(sub *submission) {
	s := g.getOrCreateSlot(sub.user)
	r := g.getOrCreateSlot(sub.other)

	if s.status == statusAvailable && r.status == statusAvailable {
		if !g.users.Exists(sub.user) {
			delete(g.slots, sub.user)
			sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrSenderNotFound, "sender not found")}

			return
		}

		if !g.users.Exists(sub.other) {
			delete(g.slots, sub.other)
			sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrReceiverNotFound, "receiver not found")}

			return
		}

		s.status = statusBusy
		r.status = statusBusy
		s.pendingCount++
		// r.pendingCount is deliberately left untouched: receivers are not
		// rate-limited by inbound transfers (spec.md §4.6.4, §9).
		g.spawnSend(sub)

		return
	}

	if s.status == statusBusy {
		if s.pendingCount >= maxPending {
			sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrTooManyRequestsToUser, "too many requests to user")}
			return
		}

		s.queue = append(s.queue, sub)
		s.pendingCount++

		return
	}

	// s is available but r is busy: s must still transition to busy here
	// (busy <=> pendingCount >= 1 would otherwise be violated by a
	// non-empty queue on an "available" slot), and since nothing will ever
	// spawn a worker for this send or advance s on its own, s is registered
	// on r's waiters so it is retried the moment r frees up, mirroring the
	// dequeue-time park in advance() (spec.md §4.6.9).
	s.status = statusBusy
	s.queue = append(s.queue, sub)
	s.pendingCount++
	r.waiters = appendUnique(r.waiters, s.username)
}

// run executes a just-admitted single-account request: the direct balance
// read shortcut, or a worker spawn for deposit/withdraw.
func (g *Gateway) run(s *slot, sub *submission) {
	if sub.kind == KindBalance {
		balance, _ := g.users.Balance(sub.user, sub.currency)
		sub.reply <- Result{Balances: []int64{balance}}
		g.queueAdvance(sub.user)

		return
	}

	handle := uuid.NewString()
	g.inflight[handle] = sub.reply

	txType := mmodel.TxDeposit
	if sub.kind == KindWithdraw {
		txType = mmodel.TxWithdraw
	}

	req := worker.Request{Type: txType, Sender: sub.user, Amount: sub.amount, Currency: sub.currency, TxID: uuid.New()}
	go worker.Run(handle, req, worker.Deps{Users: g.users, Log: g.log}, g.bus, g.logger)
}

func (g *Gateway) spawnSend(sub *submission) {
	handle := uuid.NewString()
	g.inflight[handle] = sub.reply

	req := worker.Request{Type: mmodel.TxSend, Sender: sub.user, Receiver: sub.other, Amount: sub.amount, Currency: sub.currency, TxID: uuid.New()}
	go worker.Run(handle, req, worker.Deps{Users: g.users, Log: g.log}, g.bus, g.logger)
}

// handleCompletion implements spec.md §4.6.5.
func (g *Gateway) handleCompletion(outcome bus.Outcome) {
	reply, ok := g.inflight[outcome.Worker]
	if !ok {
		g.logger.Warnf("gateway: completion for unknown worker %s", outcome.Worker)
		return
	}

	delete(g.inflight, outcome.Worker)

	if outcome.Finished {
		balances := make([]int64, 0, len(outcome.Users))
		for _, u := range outcome.Users {
			balances = append(balances, outcome.Balances[u])
		}

		reply <- Result{Balances: balances}
	} else {
		kind := mmodel.ErrUnexpected
		if outcome.Reason == mmodel.ErrNotEnoughFunds {
			kind = mmodel.ErrNotEnoughFunds
		}

		reply <- Result{Err: mmodel.NewError(kind, string(outcome.Reason))}
	}

	for _, u := range outcome.Users {
		g.queueAdvance(u)
	}
}

// advance implements spec.md §4.6.6 plus the §4.6.9 wake-on-release rule for
// a SEND parked on a busy receiver.
func (g *Gateway) advance(username string) {
	s, ok := g.slots[username]
	if !ok {
		return
	}

	if len(s.queue) == 0 {
		s.status = statusAvailable
		s.pendingCount = 0

		waiters := s.waiters
		s.waiters = nil

		for _, w := range waiters {
			g.queueAdvance(w)
		}

		return
	}

	head := s.queue[0]

	if head.kind != KindSend {
		s.queue = s.queue[1:]
		s.pendingCount--
		g.dispatchQueued(s, head)

		return
	}

	r := g.getOrCreateSlot(head.other)
	if r.status == statusBusy {
		// Parked: stays at the head of s.queue, counters untouched, and we
		// register to be retried the moment r frees up.
		r.waiters = appendUnique(r.waiters, username)
		return
	}

	s.queue = s.queue[1:]
	s.pendingCount--

	if !g.users.Exists(head.user) {
		head.reply <- Result{Err: mmodel.NewError(mmodel.ErrSenderNotFound, "sender not found")}
		g.queueAdvance(username)

		return
	}

	if !g.users.Exists(head.other) {
		head.reply <- Result{Err: mmodel.NewError(mmodel.ErrReceiverNotFound, "receiver not found")}
		g.queueAdvance(username)

		return
	}

	r.status = statusBusy
	g.spawnSend(head)
}

// dispatchQueued runs a just-dequeued single-account request, which is
// already holding the slot's lock (s.status stays busy).
func (g *Gateway) dispatchQueued(s *slot, sub *submission) {
	if !g.users.Exists(sub.user) {
		sub.reply <- Result{Err: mmodel.NewError(mmodel.ErrUserDoesNotExist, "user does not exist")}
		g.queueAdvance(s.username)

		return
	}

	g.run(s, sub)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}

	return append(list, s)
}
