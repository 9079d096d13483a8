package calculation

import (
	"math"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
	pctdec "github.com/rpgo/patrimoine/pkg/decimal"
	"github.com/rpgo/patrimoine/pkg/dateutil"
	"github.com/rpgo/patrimoine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// Row labels of the generated series.
const (
	livingExpensesLabel = "Living expenses"
	cashLabel           = "Cash"
	incomeTaxLabel      = "IRPP"
	wealthTaxLabel      = "ISF"
	labourLeviesLabel   = "Labour income"
	capitalLeviesLabel  = "Capital income"
)

// run holds the mutable state of one computation. Every row it emits lists
// the same labels in the same order, whatever the year.
type run struct {
	model     fiscal.Model
	provider  economy.Provider
	mode      economy.Mode
	firstYear int
	inflation float64 // percent, fixed for the run

	family      domain.Family
	investments []*investment
	realEstates []domain.RealEstate
	loans       []domain.Loan
	companies   []domain.Company

	cash     decimal.Decimal
	netWorth decimal.Decimal // at the start of the year being computed
	// life insurance gains withdrawn last year, taxed this year
	pendingGains []domain.NamedValue
}

func newRun(model fiscal.Model, provider economy.Provider, mode economy.Mode, firstYear int, family domain.Family, p domain.Patrimoine) (*run, error) {
	r := &run{
		model:       model,
		provider:    provider,
		mode:        mode,
		firstYear:   firstYear,
		inflation:   provider.Inflation(mode),
		family:      family,
		realEstates: p.RealEstates,
		loans:       p.Loans,
		companies:   p.Companies,
		cash:        decimal.Zero,
	}
	for _, inv := range p.Investments {
		r.investments = append(r.investments, newInvestment(inv, firstYear))
	}
	opening, err := r.openingNetWorth()
	if err != nil {
		return nil, err
	}
	r.netWorth = opening
	return r, nil
}

// indexation returns the inflation factor applied to first-year amounts.
func (r *run) indexation(year int) decimal.Decimal {
	k := year - r.firstYear
	if k <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(math.Pow(1+finmath.FromPercent(r.inflation), float64(k)))
}

func (r *run) indexed(amount decimal.Decimal, year int) decimal.Decimal {
	return amount.Mul(r.indexation(year)).Round(2)
}

func (r *run) propertyValue(re domain.RealEstate, year int) decimal.Decimal {
	return r.indexed(re.Value, year)
}

func (r *run) openingNetWorth() (decimal.Decimal, error) {
	total := r.cash
	for _, inv := range r.investments {
		total = total.Add(inv.cfg.Value)
	}
	for _, re := range r.realEstates {
		if re.IsOwned(r.firstYear - 1) {
			total = total.Add(re.Value)
		}
	}
	for _, l := range r.loans {
		residual, err := residualLoan(l, r.firstYear-1)
		if err != nil {
			return decimal.Zero, &RunError{Component: "loan " + l.Name, Year: r.firstYear, Err: err}
		}
		total = total.Add(residual)
	}
	return total, nil
}

// residualLoan returns the capital still owed at the end of year, zero before
// the loan is drawn.
func residualLoan(l domain.Loan, year int) (decimal.Decimal, error) {
	v, err := finmath.ResidualLoanValue(l.LoanedValue.InexactFloat64(), finmath.FromPercent(l.InterestRate), l.FirstYear, l.LastYear, year)
	if err != nil {
		return decimal.Zero, err
	}
	if year < l.FirstYear {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(v).Round(2), nil
}

// loanProceeds returns the capital received in year from a loan drawn during
// the run. Loans drawn before the run are already in the opening cash.
func (r *run) loanProceeds(l domain.Loan, year int) decimal.Decimal {
	if year == l.FirstYear && year >= r.firstYear {
		return l.LoanedValue.Neg()
	}
	return decimal.Zero
}

// purchasePrice returns the price paid in year for a property bought during
// the run.
func (r *run) purchasePrice(re domain.RealEstate, year int) decimal.Decimal {
	if year == re.BuyDate.Year() && year >= r.firstYear {
		return re.BuyPrice
	}
	return decimal.Zero
}

// step computes one year and returns its balance sheet and cash flow rows.
func (r *run) step(year int) (domain.BalanceSheetLine, domain.CashFlowLine, error) {
	flow := domain.CashFlowLine{
		Year:     year,
		Revenues: domain.NewNamedValueTable("Revenues"),
		Expenses: domain.NewNamedValueTable("Expenses"),
		Taxes:    domain.NewValuedTaxes(),
	}

	var income fiscal.TaxableIncome
	labour := decimal.Zero
	for _, a := range r.family.Adults {
		work, pension := decimal.Zero, decimal.Zero
		if a.IsAlive(year) {
			if a.IsRetired(year) {
				pension = r.indexed(a.Pension, year)
			} else {
				work = r.indexed(a.WorkIncome, year)
			}
		}
		flow.Revenues.Add(a.Name+" salary", work)
		flow.Revenues.Add(a.Name+" pension", pension)
		income.Salaries = income.Salaries.Add(work).Add(pension)
		labour = labour.Add(work)
	}
	for _, re := range r.realEstates {
		rent := decimal.Zero
		if re.IsOwned(year) {
			rent = r.indexed(re.YearlyRent, year)
		}
		flow.Revenues.Add(re.Name+" rent", rent)
		income.Rents = income.Rents.Add(rent)
	}
	for _, c := range r.companies {
		net := r.model.CompanyProfit.Net(r.indexed(c.GrossProfit, year))
		dividends := pctdec.ApplyPercent(net, c.Share).Round(2)
		flow.Revenues.Add(c.Name+" dividends", dividends)
		income.Dividends = income.Dividends.Add(dividends)
	}
	for _, l := range r.loans {
		flow.Revenues.Add(l.Name+" proceeds", r.loanProceeds(l, year))
	}
	income.Other = r.lifeInsuranceTaxableGains()
	capital := pctdec.Sum(income.Rents, income.Dividends, income.Other)

	irpp := r.model.IncomeTax.Compute(income, len(r.family.AdultsAlive(year)), r.family.DependentChildren(year))
	flow.Taxes.IRPP = irpp
	flow.Taxes.Append(domain.IncomeTax, incomeTaxLabel, irpp.Amount)
	flow.Taxes.Append(domain.SocialLevies, labourLeviesLabel, r.model.SocialLevies.OnLabor(labour).Round(2))
	flow.Taxes.Append(domain.SocialLevies, capitalLeviesLabel, r.model.SocialLevies.OnCapital(capital).Round(2))

	for _, re := range r.realEstates {
		proceeds, gainTax, gainLevies := decimal.Zero, decimal.Zero, decimal.Zero
		if re.SaleYear == year && year >= re.BuyDate.Year() {
			proceeds = r.propertyValue(re, year)
			gain := proceeds.Sub(re.BuyPrice)
			held := dateutil.HoldingYears(re.BuyDate, year)
			gainTax = r.model.RealEstate.Irpp(gain, held).Round(2)
			gainLevies = r.model.RealEstate.SocialLevies(gain, held).Round(2)
		}
		flow.Revenues.Add(re.Name+" sale", proceeds)
		flow.Taxes.Append(domain.IncomeTax, re.Name+" capital gain", gainTax)
		flow.Taxes.Append(domain.SocialLevies, re.Name+" capital gain", gainLevies)
	}

	isf := r.model.WealthTax.Compute(r.netWorth)
	flow.Taxes.ISF = isf
	flow.Taxes.Append(domain.WealthTax, wealthTaxLabel, isf.Amount)

	for _, a := range r.family.Adults {
		due := decimal.Zero
		if a.DeathYear == year {
			due = r.successionTax(year)
		}
		flow.Taxes.Append(domain.Succession, a.Name, due)
	}

	for _, re := range r.realEstates {
		local := decimal.Zero
		if re.IsOwned(year) {
			local = r.indexed(re.LocalTaxes, year)
		}
		flow.Taxes.Append(domain.LocalTaxes, re.Name, local)
	}

	flow.Expenses.Add(livingExpensesLabel, r.indexed(r.family.YearlyExpenses, year))
	for _, re := range r.realEstates {
		flow.Expenses.Add(re.Name+" purchase", r.purchasePrice(re, year))
	}
	for _, l := range r.loans {
		annuity := decimal.Zero
		if year >= l.FirstYear && year <= l.LastYear {
			p, err := finmath.LoanPayment(l.LoanedValue.InexactFloat64(), finmath.FromPercent(l.InterestRate), l.LastYear-l.FirstYear+1)
			if err != nil {
				return domain.BalanceSheetLine{}, domain.CashFlowLine{}, &RunError{Component: "loan " + l.Name, Year: year, Err: err}
			}
			annuity = decimal.NewFromFloat(-p).Round(2)
		}
		flow.Expenses.Add(l.Name+" annuity", annuity)
	}

	r.invest(year, flow.NetCashFlow())

	line, err := r.balanceSheet(year)
	if err != nil {
		return domain.BalanceSheetLine{}, domain.CashFlowLine{}, err
	}
	r.netWorth = line.NetWorth()
	return line, flow, nil
}

// lifeInsuranceTaxableGains returns last year's withdrawal gains net of the
// yearly rebate of each owner, and clears them.
func (r *run) lifeInsuranceTaxableGains() decimal.Decimal {
	rebate := r.model.LifeInsurance.Rebate()
	taxable := decimal.Zero
	for _, g := range r.pendingGains {
		taxable = taxable.Add(decimal.Max(g.Amount.Sub(rebate), decimal.Zero))
	}
	r.pendingGains = nil
	return taxable
}

func (r *run) addPendingGain(owner string, gain decimal.Decimal) {
	for i := range r.pendingGains {
		if r.pendingGains[i].Name == owner {
			r.pendingGains[i].Amount = r.pendingGains[i].Amount.Add(gain)
			return
		}
	}
	r.pendingGains = append(r.pendingGains, domain.NamedValue{Name: owner, Amount: gain})
}

// successionTax taxes the estate of an adult dying in year: an equal share
// of the opening net worth among the adults alive at the start of the year,
// less life insurance contracts naming beneficiaries, split equally between
// the children.
func (r *run) successionTax(year int) decimal.Decimal {
	estate := r.netWorth
	for _, inv := range r.investments {
		if clause, ok := inv.AsLifeInsuranceClause(); ok && len(clause.Beneficiaries) > 0 {
			estate = estate.Sub(inv.ValueAtEndOf(year - 1))
		}
	}
	owners := 0
	for _, a := range r.family.Adults {
		if a.IsAlive(year - 1) {
			owners++
		}
	}
	heirs := 0
	for _, c := range r.family.Children {
		if c.BirthDate.Year() <= year {
			heirs++
		}
	}
	if owners == 0 || heirs == 0 || !estate.IsPositive() {
		return decimal.Zero
	}
	share := estate.Div(decimal.NewFromInt(int64(owners))).Div(decimal.NewFromInt(int64(heirs)))
	return r.model.Succession.HeirTax(share).Mul(decimal.NewFromInt(int64(heirs)))
}

// invest grows every envelope over year and pays net in or out. A surplus
// goes to the first envelope; a shortfall is drawn from cash, then from the
// envelopes in declaration order, and what remains is carried as negative
// cash.
func (r *run) invest(year int, net decimal.Decimal) {
	rates := r.provider.Rates(economy.Year(year), r.mode)
	for i, inv := range r.investments {
		deposit := decimal.Zero
		if i == 0 && net.IsPositive() {
			deposit = net
		}
		inv.grow(finmath.FromPercent(rates.Blended(inv.cfg.SecuredShare)), deposit)
	}
	if net.IsPositive() {
		if len(r.investments) == 0 {
			r.cash = r.cash.Add(net)
		}
		return
	}

	shortfall := net.Neg()
	if r.cash.IsPositive() {
		used := decimal.Min(r.cash, shortfall)
		r.cash = r.cash.Sub(used)
		shortfall = shortfall.Sub(used)
	}
	for _, inv := range r.investments {
		if !shortfall.IsPositive() {
			break
		}
		taken, gain := inv.withdraw(shortfall)
		shortfall = shortfall.Sub(taken)
		if inv.Kind() == domain.LifeInsurance && gain.IsPositive() {
			for _, share := range inv.ownerShares(gain) {
				r.addPendingGain(share.Name, share.Amount)
			}
		}
	}
	r.cash = r.cash.Sub(shortfall)
}

func (r *run) balanceSheet(year int) (domain.BalanceSheetLine, error) {
	line := domain.BalanceSheetLine{
		Year:        year,
		Assets:      domain.NewNamedValueTable("Assets"),
		Liabilities: domain.NewNamedValueTable("Liabilities"),
	}
	for _, inv := range r.investments {
		line.Assets.Add(inv.Name(), inv.ValueAtEndOf(year))
	}
	for _, re := range r.realEstates {
		value := decimal.Zero
		if re.IsOwned(year) {
			value = r.propertyValue(re, year)
		}
		line.Assets.Add(re.Name, value)
	}
	line.Assets.Add(cashLabel, r.cash)
	for _, l := range r.loans {
		residual, err := residualLoan(l, year)
		if err != nil {
			return domain.BalanceSheetLine{}, &RunError{Component: "loan " + l.Name, Year: year, Err: err}
		}
		line.Liabilities.Add(l.Name, residual)
	}
	return line, nil
}
