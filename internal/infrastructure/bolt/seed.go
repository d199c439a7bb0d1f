package bolt

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// seed первичное заполнение пустой базы: пара демонстрационных контрагентов,
// пара товаров и стандартный шаблон на каждый вид документа. Выполняется
// только когда соответствующая коллекция пуста — повторный запуск ничего
// не перезаписывает.
func (s *Store) seed() error {
	empty, err := s.isEmpty(bucketCompanies)
	if err != nil {
		return err
	}
	if empty {
		companies := []entity.Company{
			{
				ID: "c1", Name: `ООО "Ромашка"`, INN: "7707123456", KPP: "770701001",
				Bank: "ПАО Сбербанк", BIK: "044525225", RS: "40702810938000012345",
				KS: "30101810400000000225", Address: "г. Москва, ул. Ленина, д. 1",
				Role: entity.RoleSeller, Director: "Петров А.В.", Accountant: "Сидорова Е.Н.",
			},
			{
				ID: "c2", Name: "ИП Иванов И.И.", INN: "771234567890", KPP: "",
				Bank: "АО Тинькофф Банк", BIK: "044525974", RS: "40802810100000012345",
				KS: "30101810145250000974", Address: "г. Москва, ул. Пушкина, д. 5",
				Role: entity.RoleBuyer, Director: "Иванов И.И.", Accountant: "",
			},
		}
		for i := range companies {
			if err := s.put(bucketCompanies, string(companies[i].ID), &companies[i]); err != nil {
				return err
			}
		}

		products := []entity.Product{
			{ID: "p1", Name: "Консультация (1 час)", Price: 500_000, VAT: 20,
				Barcode: "4600000000001", Currency: entity.CurrencyRUB, Unit: "час"},
			{ID: "p2", Name: "Разработка сайта", Price: 15_000_000, VAT: 20,
				Barcode: "4600000000002", Currency: entity.CurrencyRUB, Unit: "шт"},
		}
		for i := range products {
			if err := s.put(bucketProducts, string(products[i].ID), &products[i]); err != nil {
				return err
			}
		}
	}

	empty, err = s.isEmpty(bucketTemplates)
	if err != nil {
		return err
	}
	if empty {
		for _, docType := range []entity.DocType{entity.DocTypeInvoice, entity.DocTypeAct, entity.DocTypeUPD} {
			tpl := entity.DefaultTemplate(docType)
			tpl.ID = entity.TemplateID("tpl-" + string(docType))
			tpl.Name = docType.Label() + " (стандартный)"
			if err := s.put(bucketTemplates, string(tpl.ID), &tpl); err != nil {
				return err
			}
		}
	}

	return nil
}
