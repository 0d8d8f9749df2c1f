package employee

import "github.com/bxcodec/faker/v4"

// Employee is one worker row of a roster.
type Employee struct {
	ID       int
	FullName string
}

// GenerateFake returns n employees with random names.
func GenerateFake(n int) []Employee {
	employees := make([]Employee, n)
	for i := range n {
		employees[i] = Employee{
			ID:       i + 1,
			FullName: faker.Name(),
		}
	}
	return employees
}
