package layout

// Accountant tracks spending against a fixed budget for one layout run.
type Accountant struct {
	budget int
	spent  int
}

func NewAccountant(budget int) *Accountant {
	return &Accountant{budget: budget}
}

// CanAfford reports whether price still fits in the budget.
func (a *Accountant) CanAfford(price int) bool {
	return a.spent+price <= a.budget
}

// Commit records an accepted placement. It is not gated: mandatory items may
// push spending over budget.
func (a *Accountant) Commit(price int) {
	a.spent += price
}

func (a *Accountant) Spent() int {
	return a.spent
}

// Remaining is floored at zero.
func (a *Accountant) Remaining() int {
	return max(0, a.budget-a.spent)
}
