package dashboarding

import (
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/pkg/format"
	"github.com/sirupsen/logrus"
)

type Dashboarder interface {
	SellerDashboard(userID int, year int, month time.Month) (*SellerDashboard, error)
	CompanyDashboard(year int, month time.Month) (*CompanyDashboard, error)
}

// SellerDashboard é o painel individual de um vendedor no mês: vendas, meta,
// comissão e bônus, com os valores já formatados em pt-BR para exibição.
type SellerDashboard struct {
	UserID int        `json:"user_id"`
	Name   string     `json:"name"`
	Branch string     `json:"branch"`
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`

	TotalSales          float64 `json:"total_sales"`
	TotalSalesFormatted string  `json:"total_sales_formatted"`

	Goal                    float64 `json:"goal"`
	GoalFormatted           string  `json:"goal_formatted"`
	GoalPercentage          float64 `json:"goal_percentage"`
	GoalPercentageFormatted string  `json:"goal_percentage_formatted"`

	Commission          domain.CommissionResult `json:"commission"`
	CommissionFormatted string                  `json:"commission_formatted"`
	BonusFormatted      string                  `json:"bonus_formatted"`

	Sales []*domain.Sale `json:"sales"`
}

// SellerSummary é a linha de um vendedor no painel da empresa.
type SellerSummary struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Branch string `json:"branch"`

	TotalSales          float64 `json:"total_sales"`
	TotalSalesFormatted string  `json:"total_sales_formatted"`

	Goal                    float64 `json:"goal"`
	GoalPercentage          float64 `json:"goal_percentage"`
	GoalPercentageFormatted string  `json:"goal_percentage_formatted"`

	Commission domain.CommissionResult `json:"commission"`
}

// CompanyDashboard é o painel consolidado visível apenas para masters.
type CompanyDashboard struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	TotalSales          float64 `json:"total_sales"`
	TotalSalesFormatted string  `json:"total_sales_formatted"`

	GeneralGoal             float64 `json:"general_goal"`
	GeneralGoalFormatted    string  `json:"general_goal_formatted"`
	GoalPercentage          float64 `json:"goal_percentage"`
	GoalPercentageFormatted string  `json:"goal_percentage_formatted"`

	Sellers []SellerSummary `json:"sellers"`
}

type Service struct {
	userRepo repository.UserRepository
	saleRepo repository.SaleRepository
	goalRepo repository.GoalRepository
	cfg      *config.Config
}

func NewService(
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	cfg *config.Config,
) Dashboarder {
	return &Service{
		userRepo: userRepo,
		saleRepo: saleRepo,
		goalRepo: goalRepo,
		cfg:      cfg,
	}
}

// SellerDashboard monta o painel mensal de um vendedor.
func (s *Service) SellerDashboard(userID int, year int, month time.Month) (*SellerDashboard, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	total, err := s.saleRepo.TotalByUserAndPeriod(userID, year, month)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByUserAndPeriod(userID, year, month)
	if err != nil {
		return nil, err
	}

	var goal float64
	individualGoal, err := s.goalRepo.GetIndividualGoal(userID, year, month)
	if err != nil {
		return nil, err
	}
	if individualGoal != nil {
		goal = individualGoal.Goal
	}

	commission, err := s.commissionForUser(user, total, year, month)
	if err != nil {
		return nil, err
	}

	percentage := percentageOfGoal(total, goal)

	return &SellerDashboard{
		UserID: user.ID,
		Name:   user.Name,
		Branch: s.branchOf(user),
		Year:   year,
		Month:  month,

		TotalSales:          total,
		TotalSalesFormatted: format.Currency(total),

		Goal:                    goal,
		GoalFormatted:           format.Currency(goal),
		GoalPercentage:          percentage,
		GoalPercentageFormatted: format.Percentage(percentage),

		Commission:          commission,
		CommissionFormatted: format.Currency(commission.Commission),
		BonusFormatted:      format.Currency(commission.Bonus),

		Sales: sales,
	}, nil
}

// CompanyDashboard consolida o mês: total geral (incluindo vendas sem
// vendedor reconhecido), meta da empresa e a linha de cada vendedor ativo.
func (s *Service) CompanyDashboard(year int, month time.Month) (*CompanyDashboard, error) {
	total, err := s.saleRepo.TotalByCompanyAndPeriod(year, month)
	if err != nil {
		return nil, err
	}

	var generalGoal float64
	goal, err := s.goalRepo.GetGeneralGoal(year, month)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		generalGoal = goal.Goal
	}

	sellers, err := s.userRepo.ListActiveSellers()
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListIndividualGoals(year, month)
	if err != nil {
		return nil, err
	}
	goalByUser := make(map[int]float64, len(goals))
	for _, g := range goals {
		goalByUser[g.UserID] = g.Goal
	}

	branchTotals := map[string]float64{}

	summaries := make([]SellerSummary, 0, len(sellers))
	for _, seller := range sellers {
		sellerTotal, err := s.saleRepo.TotalByUserAndPeriod(seller.ID, year, month)
		if err != nil {
			return nil, err
		}

		branch := s.branchOf(seller)
		branchTotal, err := s.branchTotal(branchTotals, branch, year, month)
		if err != nil {
			return nil, err
		}

		table, ok := s.cfg.CommissionTables[branch]
		if !ok {
			logrus.Warnf("Filial sem tabela de comissão: %s", branch)
		}

		sellerGoal := goalByUser[seller.ID]
		percentage := percentageOfGoal(sellerTotal, sellerGoal)

		summaries = append(summaries, SellerSummary{
			UserID: seller.ID,
			Name:   seller.Name,
			Branch: branch,

			TotalSales:          sellerTotal,
			TotalSalesFormatted: format.Currency(sellerTotal),

			Goal:                    sellerGoal,
			GoalPercentage:          percentage,
			GoalPercentageFormatted: format.Percentage(percentage),

			Commission: commissionFor(table, sellerTotal, branchTotal),
		})
	}

	percentage := percentageOfGoal(total, generalGoal)

	return &CompanyDashboard{
		Year:  year,
		Month: month,

		TotalSales:          total,
		TotalSalesFormatted: format.Currency(total),

		GeneralGoal:             generalGoal,
		GeneralGoalFormatted:    format.Currency(generalGoal),
		GoalPercentage:          percentage,
		GoalPercentageFormatted: format.Percentage(percentage),

		Sellers: summaries,
	}, nil
}

func (s *Service) commissionForUser(user *domain.User, total float64, year int, month time.Month) (domain.CommissionResult, error) {
	branch := s.branchOf(user)

	branchTotal, err := s.branchTotal(map[string]float64{}, branch, year, month)
	if err != nil {
		return domain.CommissionResult{}, err
	}

	table, ok := s.cfg.CommissionTables[branch]
	if !ok {
		logrus.Warnf("Filial sem tabela de comissão: %s", branch)
		return domain.CommissionResult{}, nil
	}

	return commissionFor(table, total, branchTotal), nil
}

// branchOf devolve a filial do usuário; quem não tem filial definida segue a
// tabela da filial padrão configurada.
func (s *Service) branchOf(user *domain.User) string {
	if user.Branch != nil && *user.Branch != "" {
		return *user.Branch
	}
	return s.cfg.Commission.DefaultBranch
}

// branchTotal consulta o total da filial uma única vez por montagem de painel.
func (s *Service) branchTotal(cache map[string]float64, branch string, year int, month time.Month) (float64, error) {
	if total, ok := cache[branch]; ok {
		return total, nil
	}

	total, err := s.saleRepo.TotalByBranchAndPeriod(branch, year, month)
	if err != nil {
		return 0, err
	}

	cache[branch] = total
	return total, nil
}
