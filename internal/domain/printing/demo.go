package printing

import (
	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// Демо-данные живого предпросмотра шаблонов. Предпросмотр никогда не трогает
// сохранённые документы: строки фиксированные, контрагенты берутся из
// справочника по роли, а при его пустоте подставляются образцы.

// DemoRows две фиксированные демонстрационные строки.
func DemoRows() []docdata.Row {
	return []docdata.Row{
		{
			Name: "Консультация (1 час)", Unit: "час",
			Quantity: 2, Price: 500_000, VAT: 20,
			Total: 1_000_000, VATAmount: 166_667, Net: 833_333,
		},
		{
			Name: "Разработка сайта", Unit: "шт",
			Quantity: 1, Price: 15_000_000, VAT: 20,
			Total: 15_000_000, VATAmount: 2_500_000, Net: 12_500_000,
		},
	}
}

// DemoSeller первый продавец из справочника либо образец.
func DemoSeller(companies []entity.Company) entity.Company {
	for _, c := range companies {
		if c.Role == entity.RoleSeller {
			return c
		}
	}
	return entity.Company{
		ID: "demo", Name: `ООО "Ромашка"`, INN: "7707123456", KPP: "770701001",
		Bank: "ПАО Сбербанк", BIK: "044525225", RS: "40702810938000012345",
		KS: "30101810400000000225", Address: "г. Москва, ул. Ленина, д. 1",
		Role: entity.RoleSeller, Director: "Петров А.В.", Accountant: "Сидорова Е.Н.",
	}
}

// DemoBuyer первый покупатель из справочника либо образец.
func DemoBuyer(companies []entity.Company) entity.Company {
	for _, c := range companies {
		if c.Role == entity.RoleBuyer {
			return c
		}
	}
	return entity.Company{
		ID: "demo2", Name: "ИП Иванов И.И.", INN: "771234567890", KPP: "",
		Bank: "АО Тинькофф Банк", BIK: "044525974", RS: "40802810100000012345",
		KS: "30101810145250000974", Address: "г. Москва, ул. Пушкина, д. 5",
		Role: entity.RoleBuyer, Director: "Иванов И.И.", Accountant: "",
	}
}
