package dto

// CompanyRequest тело создания и полного обновления организации.
// Хранилище снапшотное, поэтому частичных обновлений нет: клиент
// присылает организацию целиком.
type CompanyRequest struct {
	Name       string `json:"name"`
	INN        string `json:"inn"`
	KPP        string `json:"kpp"`
	Bank       string `json:"bank"`
	BIK        string `json:"bik"`
	RS         string `json:"rs"`
	KS         string `json:"ks"`
	Address    string `json:"address"`
	Role       string `json:"role"`
	Director   string `json:"director"`
	Accountant string `json:"accountant"`
}
