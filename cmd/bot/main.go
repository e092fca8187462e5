package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"craftmind.ai/internal/action"
	"craftmind.ai/internal/brain"
	"craftmind.ai/internal/config"
	"craftmind.ai/internal/driver"
	"craftmind.ai/internal/gateway"
	"craftmind.ai/internal/journal"
	"craftmind.ai/internal/memory"
	"craftmind.ai/internal/protocol"
)

func main() {
	var (
		cfgPath = flag.String("config", "configs/settings.yaml", "settings file")
		server  = flag.String("server", "", "server profile override")
		name    = flag.String("name", "", "agent name override")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[bot] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if *server != "" {
		cfg.DefaultServer = *server
		if err := cfg.Validate(); err != nil {
			logger.Fatalf("config: %v", err)
		}
	}
	if *name != "" {
		cfg.AgentName = *name
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticks := journal.NewTickLogger(cfg.Journal.Dir)
	defer ticks.Close()

	var index *journal.SQLiteIndex
	if cfg.Journal.SQLitePath != "" {
		index, err = journal.OpenSQLite(cfg.Journal.SQLitePath)
		if err != nil {
			logger.Fatalf("journal db: %v", err)
		}
		defer index.Close()
	}

	for {
		err := runSession(ctx, cfg, logger, ticks, index)
		if err == nil || ctx.Err() != nil {
			return
		}
		if !cfg.AutoReconnect || strings.Contains(err.Error(), protocol.ErrAuthRejected) {
			logger.Fatalf("session: %v", err)
		}
		logger.Printf("session ended: %v, reconnecting in 5s", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

// runSession owns one connection's lifetime: handshake, wiring, decision
// loop. Returns the fatal error that ended it.
func runSession(ctx context.Context, cfg config.Config, logger *log.Logger, ticks *journal.TickLogger, index *journal.SQLiteIndex) error {
	client, err := gateway.Dial(ctx, cfg.Server().URL(), cfg.AgentName, cfg.Server().Token, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	mem := memory.NewTracker(uint64(cfg.DamageWindowTicks))

	brains := brain.NewManager(logger)
	for _, bn := range cfg.Brains {
		b := buildBrain(bn, mem)
		if b == nil {
			logger.Printf("unknown brain %q in config, skipping", bn)
			continue
		}
		brains.Register(b)
	}

	actions := action.NewManager(client, logger, time.Duration(cfg.CancelAckTimeoutMs)*time.Millisecond)
	client.OnResult(func(res protocol.ResultMsg) {
		actions.HandleResult(res)
		if index != nil {
			_ = index.WriteResult(journal.ResultRecord{
				CommandID: res.CommandID,
				Tick:      res.Tick,
				TS:        time.Now().UTC().Format(time.RFC3339Nano),
				Status:    res.Status,
				Code:      res.Code,
				Message:   res.Message,
			})
		}
	})
	go client.Run()

	records := []driver.Recorder{ticks}
	if index != nil {
		records = append(records, index)
	}

	loop := &driver.Loop{
		Log:      logger,
		Interval: time.Duration(cfg.AIDecisionInterval) * time.Second,
		Source:   client,
		Brains:   brains,
		Actions:  actions,
		Memory:   mem,
		Records:  records,
		Fatal:    client.Fatal(),
	}

	logger.Printf("decision loop starting: interval=%ds brains=%d", cfg.AIDecisionInterval, len(brains.Brains()))
	err = loop.Run(ctx)

	// Leave nothing running on the way out.
	cancelCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	actions.CancelActive(cancelCtx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func buildBrain(name string, mem *memory.Tracker) brain.Brain {
	switch name {
	case brain.BrainHealth:
		return brain.NewHealth(mem)
	case brain.BrainCautious:
		return brain.NewCautious(mem)
	case brain.BrainAggressive:
		return brain.NewAggressive()
	case brain.BrainStrategic:
		return brain.NewStrategic()
	default:
		return nil
	}
}
