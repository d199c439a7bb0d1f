package entity

// CompanyID непрозрачный идентификатор организации. Ссылки по нему слабые:
// документ может указывать на удалённую организацию.
type CompanyID string

// Роли организации. Роль разбивает справочник на два непересекающихся пула
// для выбора в документах.
const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// Company организация-контрагент (продавец или покупатель) с банковскими реквизитами.
type Company struct {
	ID         CompanyID `json:"id"`
	Name       string    `json:"name"`
	INN        string    `json:"inn"`
	KPP        string    `json:"kpp"`
	Bank       string    `json:"bank"`
	BIK        string    `json:"bik"`
	RS         string    `json:"rs"` // расчётный счёт
	KS         string    `json:"ks"` // корреспондентский счёт
	Address    string    `json:"address"`
	Role       string    `json:"role"` // RoleSeller | RoleBuyer
	Director   string    `json:"director"`
	Accountant string    `json:"accountant"`
}

// FindCompany ищет организацию по идентификатору в снапшоте справочника.
// Второе значение false означает висячую ссылку — вызывающий обязан её обработать.
func FindCompany(companies []Company, id CompanyID) (*Company, bool) {
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], true
		}
	}
	return nil, false
}
