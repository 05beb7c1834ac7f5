package scan

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/patrickmn/go-cache"

	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/service/checksum"
	"bankocr/internal/domain/value"
	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
	"bankocr/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const memoCleanupFactor = 2

type Decoder interface {
	Decode(block value.GlyphBlock) (entity.Account, error)
}

type Repairer interface {
	Repair(status entity.AccountStatus) entity.Repair
}

// Service обрабатывает пакет блоков параллельно. Порядок результатов
// совпадает с порядком входа.
type Service struct {
	decoder  Decoder
	repairer Repairer
	recorder Recorder
	workers  int

	// Исправления по блоку. nil, если кэш выключен.
	memo *cache.Cache
}

func New(decoder Decoder, repairer Repairer) *Service {
	return &Service{
		decoder:  decoder,
		repairer: repairer,
		recorder: nopRecorder{},
		workers:  runtime.GOMAXPROCS(0),
	}
}

func (s *Service) WithWorkers(n int) *Service {
	if n > 0 {
		s.workers = n
	}
	return s
}

func (s *Service) WithRecorder(r Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithCacheTTL включает кэш исправлений. Нулевой TTL выключает его.
func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	if ttl <= 0 {
		s.memo = nil
		return s
	}

	s.memo = cache.New(ttl, memoCleanupFactor*ttl)

	return s
}

func (s *Service) Workers() int {
	return s.workers
}

// Decode распознаёт все блоки. Первый некорректный блок прерывает пакет.
func (s *Service) Decode(ctx context.Context, blocks []value.GlyphBlock) ([]entity.Account, error) {
	defer s.observe(ctx, ModeDecode, len(blocks), time.Now())

	return lox.ParallelMapErr(ctx, s.workers, blocks,
		func(_ context.Context, block value.GlyphBlock, i int) (entity.Account, error) {
			account, err := s.decode(block, i)
			if err != nil {
				return entity.Account{}, err
			}

			s.recorder.AccountProcessed(ModeDecode, legibility(account))

			return account, nil
		})
}

// Validate распознаёт блоки и проверяет контрольную сумму.
func (s *Service) Validate(ctx context.Context, blocks []value.GlyphBlock) ([]entity.AccountStatus, error) {
	defer s.observe(ctx, ModeValidate, len(blocks), time.Now())

	return lox.ParallelMapErr(ctx, s.workers, blocks,
		func(_ context.Context, block value.GlyphBlock, i int) (entity.AccountStatus, error) {
			account, err := s.decode(block, i)
			if err != nil {
				return entity.AccountStatus{}, err
			}

			status := checksum.Status(account)
			s.recorder.AccountProcessed(ModeValidate, validity(status))

			return status, nil
		})
}

// Repair распознаёт, проверяет и пытается исправить каждый номер.
func (s *Service) Repair(ctx context.Context, blocks []value.GlyphBlock) ([]entity.Repair, error) {
	defer s.observe(ctx, ModeRepair, len(blocks), time.Now())

	return lox.ParallelMapErr(ctx, s.workers, blocks,
		func(_ context.Context, block value.GlyphBlock, i int) (entity.Repair, error) {
			result, err := s.repair(block, i)
			if err != nil {
				return entity.Repair{}, err
			}

			s.recorder.AccountProcessed(ModeRepair, result.Outcome.String())

			return result, nil
		})
}

// Process возвращает строки результата в формате выбранного режима.
func (s *Service) Process(ctx context.Context, mode Mode, blocks []value.GlyphBlock) ([]string, error) {
	switch mode {
	case ModeDecode:
		accounts, err := s.Decode(ctx, blocks)
		if err != nil {
			return nil, err
		}
		return lox.Map(accounts, func(a entity.Account) string { return a.Number }), nil
	case ModeValidate:
		statuses, err := s.Validate(ctx, blocks)
		if err != nil {
			return nil, err
		}
		return lox.Map(statuses, entity.AccountStatus.String), nil
	case ModeRepair:
		repairs, err := s.Repair(ctx, blocks)
		if err != nil {
			return nil, err
		}
		return lox.Map(repairs, entity.Repair.String), nil
	default:
		_, err := ParseMode(string(mode))
		return nil, err
	}
}

func (s *Service) decode(block value.GlyphBlock, i int) (entity.Account, error) {
	account, err := s.decoder.Decode(block)
	if err != nil {
		return entity.Account{}, fmt.Errorf("entry %d: %w", i+1, err)
	}
	return account, nil
}

func (s *Service) repair(block value.GlyphBlock, i int) (entity.Repair, error) {
	if s.memo != nil {
		if cached, ok := s.memo.Get(block.String()); ok {
			return cached.(entity.Repair), nil //nolint:forcetypeassert
		}
	}

	account, err := s.decode(block, i)
	if err != nil {
		return entity.Repair{}, err
	}

	result := s.repairer.Repair(checksum.Status(account))

	if s.memo != nil {
		s.memo.SetDefault(block.String(), result)
	}

	return result, nil
}

func (s *Service) observe(ctx context.Context, mode Mode, accounts int, start time.Time) {
	elapsed := time.Since(start)
	s.recorder.BatchProcessed(mode, elapsed)

	logger(ctx).Debug("batch processed",
		logx.FieldMode, mode,
		logx.FieldAccounts, accounts,
		logx.FieldDurationMs, elapsed.Milliseconds(),
		logx.FieldWorkers, s.workers,
	)
}

func legibility(a entity.Account) string {
	if a.IsLegible() {
		return OutcomeLegible
	}
	return OutcomeIllegible
}

func validity(s entity.AccountStatus) string {
	switch {
	case !s.IsLegible:
		return OutcomeIllegible
	case !s.IsValidChecksum:
		return OutcomeError
	default:
		return OutcomeValid
	}
}
