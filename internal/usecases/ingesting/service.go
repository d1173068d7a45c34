package ingesting

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/pkg/normalizer"
	"github.com/TeuSpnl/comisys/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Ingestor interface {
	IngestSpreadsheet(ctx context.Context, file io.Reader) (*domain.ReconciliationReport, error)
}

// Service orquestra a ingestão: extrai a planilha, resolve os vendedores e
// aplica a conciliação. Uma conciliação por vez; uploads concorrentes recebem
// ErrUploadInProgress em vez de entrar na fila.
type Service struct {
	extractor *Extractor
	userRepo  repository.UserRepository
	saleRepo  repository.SaleRepository

	mu sync.Mutex
}

func NewService(
	extractor *Extractor,
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
) Ingestor {
	return &Service{
		extractor: extractor,
		userRepo:  userRepo,
		saleRepo:  saleRepo,
	}
}

// IngestSpreadsheet processa um upload de planilha de vendas do começo ao
// fim. Qualquer erro antes ou durante a conciliação deixa o banco intocado.
func (s *Service) IngestSpreadsheet(ctx context.Context, file io.Reader) (*domain.ReconciliationReport, error) {
	if !s.mu.TryLock() {
		return nil, ErrUploadInProgress
	}
	defer s.mu.Unlock()

	batchID, err := utils.GenerateBatchID()
	if err != nil {
		return nil, err
	}

	extracted, err := s.extractor.Extract(file)
	if err != nil {
		return nil, err
	}

	if len(extracted.Records) == 0 {
		return nil, ErrEmptySpreadsheet
	}

	resolved, unmatched, err := s.resolveSellers(extracted.Records)
	if err != nil {
		return nil, err
	}

	window := buildWindow(extracted.Records)

	logrus.Infof(
		"Conciliação %s: %d linhas lidas, %d descartadas, janela de %d mês(es)",
		batchID, extracted.RowsRead, extracted.RowsDropped, len(window),
	)

	plan, err := s.saleRepo.Reconcile(ctx, resolved, window)
	if err != nil {
		return nil, &ReconciliationError{Err: err}
	}

	report := &domain.ReconciliationReport{
		BatchID:          batchID,
		Window:           window,
		RowsRead:         extracted.RowsRead,
		RowsDropped:      extracted.RowsDropped,
		Inserted:         plan.Inserted,
		Updated:          plan.Updated,
		Removed:          plan.Removed,
		UnmatchedSellers: unmatched,
	}

	logrus.Infof(
		"Conciliação %s aplicada: %d inseridas, %d atualizadas, %d removidas, %d vendedores não reconhecidos",
		batchID, report.Inserted, report.Updated, report.Removed, len(unmatched),
	)

	return report, nil
}

// resolveSellers casa o nome livre de vendedor da planilha com os vendedores
// ativos cadastrados, comparando os nomes normalizados. Nomes sem
// correspondência entram no relatório uma única vez; as vendas deles ficam
// sem dono mas continuam nos totais da empresa.
func (s *Service) resolveSellers(records []domain.SaleRecord) ([]domain.ResolvedRecord, []string, error) {
	sellers, err := s.userRepo.ListActiveSellers()
	if err != nil {
		return nil, nil, err
	}

	byName := make(map[string]int, len(sellers))
	for _, seller := range sellers {
		byName[normalizer.Normalize(seller.Name)] = seller.ID
	}

	resolved := make([]domain.ResolvedRecord, 0, len(records))
	unmatchedSet := map[string]bool{}
	var unmatched []string

	for _, record := range records {
		rec := domain.ResolvedRecord{SaleRecord: record}

		if userID, ok := byName[normalizer.Normalize(record.SellerName)]; ok {
			id := userID
			rec.UserID = &id
		} else if record.SellerName != "" && !unmatchedSet[record.SellerName] {
			unmatchedSet[record.SellerName] = true
			unmatched = append(unmatched, record.SellerName)
		}

		resolved = append(resolved, rec)
	}

	sort.Strings(unmatched)
	return resolved, unmatched, nil
}

// buildWindow deriva a janela de conciliação dos meses presentes no upload.
func buildWindow(records []domain.SaleRecord) []domain.MonthWindow {
	seen := map[domain.MonthWindow]bool{}
	var window []domain.MonthWindow

	for _, record := range records {
		w := domain.MonthWindow{Year: record.Date.Year(), Month: record.Date.Month()}
		if !seen[w] {
			seen[w] = true
			window = append(window, w)
		}
	}

	sort.Slice(window, func(i, j int) bool {
		if window[i].Year != window[j].Year {
			return window[i].Year < window[j].Year
		}
		return window[i].Month < window[j].Month
	})

	return window
}
