// Package seed fills an empty database with realistic demo members, loans and partners.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultMembers = 1000
	nplRate        = 0.33
	day            = 24 * time.Hour
)

var (
	kenyanNames = [][2]string{
		{"John", "Kamau"}, {"Mary", "Wanjiku"}, {"Peter", "Mwangi"}, {"Grace", "Akinyi"},
		{"David", "Kiprotich"}, {"Agnes", "Nyong'o"}, {"Samuel", "Ochieng"}, {"Faith", "Wambui"},
		{"Michael", "Ruto"}, {"Joyce", "Chebet"}, {"Joseph", "Mutua"}, {"Esther", "Wairimu"},
		{"Daniel", "Kinyua"}, {"Rose", "Atieno"}, {"Francis", "Mburu"}, {"Lucy", "Jepkoech"},
	}
	branchCodes = []string{"001", "002", "003", "004", "005", "006", "007", "008", "009", "010"}
	loanTerms   = []int{6, 12, 18, 24, 36}
)

type Summary struct {
	Members  int  `json:"members"`
	Loans    int  `json:"loans"`
	Partners int  `json:"partners"`
	Skipped  bool `json:"skipped"`
}

type Generator struct {
	members  interfaces.MemberRepositoryInterface
	loans    interfaces.LoanRepositoryInterface
	partners interfaces.PartnerRepositoryInterface
	rng      *rand.Rand
	now      func() time.Time
	newID    func() string
}

func NewGenerator(
	members interfaces.MemberRepositoryInterface,
	loans interfaces.LoanRepositoryInterface,
	partners interfaces.PartnerRepositoryInterface,
) *Generator {
	return &Generator{
		members:  members,
		loans:    loans,
		partners: partners,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Run seeds only when the members collection is empty. Inserts are not
// rolled back if a later batch fails.
func (g *Generator) Run(ctx context.Context, memberCount int) (Summary, error) {
	existing, err := g.members.Count(ctx)
	if err != nil {
		return Summary{}, err
	}
	if existing > 0 {
		logger.CtxInfo(ctx, "Members already present, skipping seed", slog.Int64("members", existing))
		return Summary{Skipped: true}, nil
	}
	if memberCount <= 0 {
		memberCount = DefaultMembers
	}

	logger.CtxInfo(ctx, "Generating dummy data", slog.Int("members", memberCount))
	var summary Summary

	members := g.Members(memberCount)
	if summary.Members, err = g.members.InsertMany(ctx, members); err != nil {
		logger.CtxError(ctx, log_messages.ErrorSeedingData, err, slog.String("collection", "members"))
		return summary, err
	}

	var loans []models.LoanAccount
	for _, member := range members {
		loans = append(loans, g.LoansFor(member)...)
	}
	if summary.Loans, err = g.loans.InsertMany(ctx, loans); err != nil {
		logger.CtxError(ctx, log_messages.ErrorSeedingData, err, slog.String("collection", "loan_accounts"))
		return summary, err
	}

	if summary.Partners, err = g.partners.InsertMany(ctx, g.Partners()); err != nil {
		logger.CtxError(ctx, log_messages.ErrorSeedingData, err, slog.String("collection", "external_partners"))
		return summary, err
	}

	logger.CtxInfo(ctx, "Dummy data generated",
		slog.Int("members", summary.Members),
		slog.Int("loans", summary.Loans),
		slog.Int("partners", summary.Partners),
	)
	return summary, nil
}

// Members numbers members sequentially from STM10000.
func (g *Generator) Members(count int) []models.Member {
	now := g.now()
	members := make([]models.Member, 0, count)
	for i := 0; i < count; i++ {
		name := kenyanNames[g.rng.IntN(len(kenyanNames))]
		in := models.MemberCreate{
			MemberNumber: "STM" + strconv.Itoa(10000+i),
			FirstName:    name[0],
			LastName:     name[1],
			Email:        emailFor(name[0], name[1]),
			PhoneNumber:  "+254" + strconv.Itoa(g.between(700000000, 799999999)),
			IDNumber:     strconv.Itoa(g.between(10000000, 39999999)),
			Address:      fmt.Sprintf("P.O. Box %d, Nairobi", g.between(1, 9999)),
			BranchCode:   branchCodes[g.rng.IntN(len(branchCodes))],
		}
		member := models.NewMember(in, g.newID(), now)
		member.RegistrationDate = now.Add(-time.Duration(g.between(30, 1825)) * day)
		members = append(members, member)
	}
	return members
}

// LoansFor gives a member one to three loans, roughly a third of them non-performing.
func (g *Generator) LoansFor(member models.Member) []models.LoanAccount {
	now := g.now()
	count := g.between(1, 3)
	loans := make([]models.LoanAccount, 0, count)

	for j := 1; j <= count; j++ {
		loanType := models.LoanTypeBranch
		if g.rng.IntN(2) == 1 {
			loanType = models.LoanTypeMobile
		}
		principal := float64(g.between(50000, 2000000))
		rate := g.uniform(12, 24)
		term := loanTerms[g.rng.IntN(len(loanTerms))]

		loan := models.NewLoanAccount(models.LoanAccountCreate{
			LoanNumber:       fmt.Sprintf("LN%s%02d", member.MemberNumber, j),
			MemberID:         member.ID,
			MemberNumber:     member.MemberNumber,
			LoanType:         loanType,
			PrincipalAmount:  principal,
			MonthlyPayment:   models.RoundToCents(principal / float64(term) * (1 + rate/100/12)),
			InterestRate:     models.RoundToCents(rate),
			LoanTermMonths:   term,
			DisbursementDate: now.Add(-time.Duration(g.between(30, 730)) * day),
			BranchCode:       member.BranchCode,
		}, g.newID(), now)

		var lastPayment time.Time
		if g.rng.Float64() < nplRate {
			loan.Status = models.LoanStatusNonPerforming
			loan.DaysInArrears = g.between(90, 730)
			loan.OutstandingBalance = models.RoundToCents(principal * g.uniform(0.6, 1.2))
			loan.ArrearsAmount = models.RoundToCents(loan.OutstandingBalance * g.uniform(0.3, 0.8))
			lastPayment = now.Add(-time.Duration(loan.DaysInArrears) * day)
		} else {
			loan.DaysInArrears = g.between(0, 30)
			loan.OutstandingBalance = models.RoundToCents(principal * g.uniform(0.2, 0.8))
			lastPayment = now.Add(-time.Duration(g.between(1, 30)) * day)
		}
		loan.LastPaymentDate = &lastPayment
		loans = append(loans, loan)
	}
	return loans
}

func (g *Generator) Partners() []models.ExternalPartner {
	now := g.now()
	requests := []models.ExternalPartnerCreate{
		{
			PartnerName:    "Elite Recovery Services",
			PartnerType:    models.PartnerTypeDebtCollector,
			ContactPerson:  "Jane Doe",
			Email:          "jane@eliterecovery.co.ke",
			PhoneNumber:    "+254701234567",
			CommissionRate: 15,
		},
		{
			PartnerName:    "Quick Auction House",
			PartnerType:    models.PartnerTypeAuctioneer,
			ContactPerson:  "Robert Smith",
			Email:          "robert@quickauction.co.ke",
			PhoneNumber:    "+254702345678",
			CommissionRate: 10,
		},
		{
			PartnerName:    "Legal Associates LLP",
			PartnerType:    models.PartnerTypeLegalFirm,
			ContactPerson:  "Mary Johnson",
			Email:          "mary@legalassociates.co.ke",
			PhoneNumber:    "+254703456789",
			CommissionRate: 20,
		},
	}

	partners := make([]models.ExternalPartner, 0, len(requests))
	for _, in := range requests {
		partners = append(partners, models.NewExternalPartner(in, g.newID(), now))
	}
	return partners
}

// between is inclusive on both ends.
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func emailFor(first, last string) string {
	local := strings.ToLower(first + "." + last)
	return strings.ReplaceAll(local, "'", "") + "@email.com"
}
