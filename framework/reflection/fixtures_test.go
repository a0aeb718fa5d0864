package reflection

// Test doubles modeled on the classic teaching examples.

type Person struct {
	name string
	age  int
}

func NewPerson(name string, age int) *Person { return &Person{name: name, age: age} }

func (p *Person) Name() string { return p.name }
func (p *Person) Age() int     { return p.age }

type BankAccount struct {
	accountNumber string
	balance       float64
	OwnerName     string
}

func NewBankAccount(number string, balance float64) *BankAccount {
	return &BankAccount{accountNumber: number, balance: balance}
}

func (a *BankAccount) Deposit(amount float64) { a.balance += amount }
func (a *BankAccount) Balance() float64       { return a.balance }

// auditLog exists to prove that unexported methods stay invisible to
// reflection.
func (a *BankAccount) auditLog(action string) string { return "audit: " + action }

type Calculator struct {
	Memory int
}

func (c *Calculator) Add(a, b int) int      { return a + b }
func (c *Calculator) Multiply(a, b int) int { return a * b }

// Greet has a value receiver so Call is exercised through both method sets.
func (c Calculator) Greet(name string) string { return "Hello, " + name + "!" }

func (c *Calculator) Sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}
