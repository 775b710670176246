package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/brookbank/brookbank/internal/config"
	"github.com/brookbank/brookbank/internal/customer"
	"github.com/brookbank/brookbank/internal/ledger"
	"github.com/brookbank/brookbank/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting demo", "app", cfg.AppName, "env", cfg.AppEnv, "currency", cfg.Currency)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}

	logger.Info("demo finished")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	bank := ledger.New()
	jane := customer.New("Jane Doe", "12 Harbor Lane", bank)
	john := customer.New("John Roe", "3 Mill Road", bank)

	first, err := jane.OpenAccount(ctx, amount("500.0"))
	if err != nil {
		return fmt.Errorf("open account for %s: %w", jane.Name(), err)
	}
	logAccount(logger, cfg, "account opened", first)

	if err := bank.Deposit(ctx, first.ID, amount("100.0")); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if err := report(ctx, bank, logger, cfg, first.ID); err != nil {
		return err
	}

	second, err := john.OpenAccount(ctx, amount("1000.0"))
	if err != nil {
		return fmt.Errorf("open account for %s: %w", john.Name(), err)
	}
	logAccount(logger, cfg, "account opened", second)

	if err := bank.Deposit(ctx, second.ID, amount("500.0")); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if err := report(ctx, bank, logger, cfg, second.ID); err != nil {
		return err
	}

	if err := bank.Withdraw(ctx, first.ID, amount("300.0")); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	if err := report(ctx, bank, logger, cfg, first.ID); err != nil {
		return err
	}

	// An overdraft attempt is a caller-visible failure, not a crash.
	if err := bank.Withdraw(ctx, first.ID, amount("500.0")); !errors.Is(err, ledger.ErrInsufficientFunds) {
		return fmt.Errorf("expected an insufficient funds rejection, got: %v", err)
	}
	logger.Warn("withdrawal rejected", "account_id", first.ID, "reason", ledger.ErrInsufficientFunds)
	if err := report(ctx, bank, logger, cfg, first.ID); err != nil {
		return err
	}

	res, err := bank.Transfer(ctx, second.ID, first.ID, amount("200.0"))
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	logger.Info("transfer completed",
		"reference", res.Reference,
		"from_balance", res.FromBalance.StringFixed(2),
		"to_balance", res.ToBalance.StringFixed(2),
	)

	for _, acc := range bank.Accounts(ctx) {
		logAccount(logger, cfg, "final statement", acc)
	}
	return nil
}

func report(ctx context.Context, bank *ledger.Ledger, logger *slog.Logger, cfg config.Config, id int64) error {
	acc, err := bank.GetAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("get account %d: %w", id, err)
	}
	logAccount(logger, cfg, "balance", acc)
	return nil
}

func logAccount(logger *slog.Logger, cfg config.Config, msg string, acc ledger.Account) {
	logger.Info(msg,
		"account_id", acc.ID,
		"holder", acc.Holder,
		"address", acc.Address,
		"balance", acc.Balance.StringFixed(2),
		"currency", cfg.Currency,
	)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
