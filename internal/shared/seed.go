package shared

import "invisioo/internal/domain"

// SeedPlaces is the static Almaty place list the store starts from when no
// snapshot is present. The seeder also pushes the Scores snapshots into the
// ratings store as baseline rows.
var SeedPlaces = []domain.Place{
	{
		ID:       "PMSP",
		Name:     "Центр ПМСП Алмалинского района",
		Category: "Поликлиника",
		Status:   domain.StatusAccessible,
		Lat:      43.252745, Lng: 76.910405,
		Address: "ул. Толе би 157",
		Details: []string{"Пандусы", "Широкие входы", "Доступные туалеты", "Дорожка для слабовидящих"},
		Supports: []domain.Category{
			domain.CatWheelchair, domain.CatMotor, domain.CatVision, domain.CatHearing,
		},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/PSMP/IMG_5623.png", "/picture/PSMP/IMG_5625.png", "/picture/PSMP/IMG_5626.png"},
			Accessibility: []string{"/picture/PSMP/IMG_5624.png", "/picture/PSMP/IMG_5622.png"},
		},
	},
	{
		ID:       "Hotel_Kazakhstan",
		Name:     "Гостиница Казахстан",
		Category: "Гостиница",
		Status:   domain.StatusAccessible,
		Lat:      43.244608, Lng: 76.9575,
		Address: "проспект Достык 52",
		Details: []string{"Пандусы", "Широкие входы", "Доступные туалеты"},
		Supports: []domain.Category{
			domain.CatWheelchair, domain.CatMotor, domain.CatVision, domain.CatHearing,
		},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 7, domain.CatMotor: 8, domain.CatVision: 8,
			domain.CatHearing: 5, domain.CatTemporary: 7, domain.CatIntellectual: 8,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/hotel/IMG_5658.png", "/picture/hotel/IMG_5659.png", "/picture/hotel/IMG_5661.png"},
			Accessibility: []string{"/picture/hotel/IMG_5660.png", "/picture/hotel/IMG_5662.png"},
		},
	},
	{
		ID:       "hospital1",
		Name:     "Городская поликлиника 1",
		Category: "Поликлиника",
		Status:   domain.StatusAccessible,
		Lat:      43.229474, Lng: 76.801547,
		Address: "Калкаман микрорайон, 2",
		Details: []string{"Пандусы", "Широкие входы", "Доступные туалеты", "Дорожка для слабовидящих"},
		Supports: []domain.Category{
			domain.CatWheelchair, domain.CatMotor, domain.CatVision, domain.CatHearing,
		},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/hospital1/IMG_5667.png", "/picture/hospital1/IMG_5665.png", "/picture/hospital1/IMG_5663.png"},
			Accessibility: []string{"/picture/hospital1/IMG_5664.png", "/picture/hospital1/IMG_5666.png"},
		},
	},
	{
		ID:       "best_western_atakent",
		Name:     "Best Western Plus Atakent Park Hotel",
		Category: "Отель",
		Status:   domain.StatusAccessible,
		Lat:      43.224995, Lng: 76.904718,
		Address:  "ул. Тимирязева 42 строение 10",
		Details:  []string{"Пандус у входа", "Лифт", "Широкие проходы", "Доступные номера"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/best_western_atakent/IMG_5148.jpg", "/picture/best_western_atakent/IMG_5149.jpg"},
			Accessibility: []string{"/picture/best_western_atakent/IMG_5150.jpg", "/picture/best_western_atakent/IMG_5151.jpg"},
		},
	},
	{
		ID:       "atakent_mall",
		Name:     "Atakent Mall",
		Category: "Торговый центр",
		Status:   domain.StatusAccessible,
		Lat:      43.225277, Lng: 76.908619,
		Address:  "ул. Тимирязева 42 к3",
		Details:  []string{"Пандусы", "Лифты", "Навигация", "Доступный санузел"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor, domain.CatVision},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/atakent_mall/IMG_5172.jpg", "/picture/atakent_mall/IMG_5171.jpg", "/picture/atakent_mall/IMG_5164.jpg"},
			Accessibility: []string{"/picture/atakent_mall/IMG_5170.jpg", "/picture/atakent_mall/IMG_5174.jpg"},
		},
	},
	{
		ID:       "atakent_hostel",
		Name:     "Atakent Hostel",
		Category: "Хостел",
		Status:   domain.StatusAccessible,
		Lat:      43.224794, Lng: 76.90416,
		Address:  "ул. Тимирязева 42",
		Details:  []string{"Частично доступный вход", "Небольшой пандус", "Просторный холл"},
		Supports: []domain.Category{domain.CatMotor, domain.CatTemporary},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/atakent_hostel/IMG_5154.jpg", "/picture/atakent_hostel/IMG_5155.jpg", "/picture/atakent_hostel/IMG_5156.jpg"},
			Accessibility: []string{"/picture/atakent_hostel/IMG_5158.jpg", "/picture/atakent_hostel/IMG_5157.jpg"},
		},
	},
	{
		ID:       "bank_center_credit",
		Name:     "Bank CenterCredit",
		Category: "Банк",
		Status:   domain.StatusAccessible,
		Lat:      43.225598, Lng: 76.904924,
		Address:  "ул. Тимирязева 42",
		Details:  []string{"Пандус", "Ровный вход", "Навигация внутри отделения"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor, domain.CatVision},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/bank_center_credit/IMG_5179.jpg", "/picture/bank_center_credit/IMG_5180.jpg", "/picture/bank_center_credit/IMG_5181.jpg"},
			Accessibility: []string{"/picture/bank_center_credit/IMG_5182.jpg", "/picture/bank_center_credit/IMG_5146.jpg", "/picture/bank_center_credit/IMG_5178.jpg"},
		},
	},
	{
		ID:       "Zhibek_zholy",
		Name:     "ZHibek Zholy",
		Category: "Торговый центр",
		Status:   domain.StatusPartial,
		Lat:      43.261362, Lng: 76.929122,
		Address:  "проспект Жибек Жолы 135",
		Details:  []string{"Небольшой пандус", "Широкий вход"},
		Supports: []domain.Category{domain.CatMotor, domain.CatTemporary},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/Zhibek_zholy/IMG_5618.png", "/picture/Zhibek_zholy/IMG_5621.png", "/picture/Zhibek_zholy/IMG_5619.png"},
			Accessibility: []string{"/picture/Zhibek_zholy/IMG_5617.png", "/picture/Zhibek_zholy/IMG_5620.png"},
		},
	},
	{
		ID:       "hospital16",
		Name:     "Городская поликлиника 16",
		Category: "Поликлиника",
		Status:   domain.StatusAccessible,
		Lat:      43.220474, Lng: 76.86514,
		Address:  "Аксай 2 микрорайон, 69а",
		Details:  []string{"Лифт", "Пандус", "Удобные коридоры"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/hospital16/IMG_5668.png", "/picture/hospital16/IMG_5669.png", "/picture/hospital16/IMG_5670.png"},
			Accessibility: []string{"/picture/hospital16/IMG_5671.png", "/picture/hospital16/IMG_5672.png"},
		},
	},
	{
		ID:       "dostyq_plaza",
		Name:     "Достык Плаза",
		Category: "Торговый центр",
		Status:   domain.StatusAccessible,
		Lat:      43.233057, Lng: 76.957123,
		Address:  "ул. Самал-2, 111",
		Details:  []string{"Лифт", "Пандус", "Удобные коридоры"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor},
		Scores: map[domain.Category]int{
			domain.CatWheelchair: 9, domain.CatMotor: 9, domain.CatVision: 8,
			domain.CatHearing: 7, domain.CatTemporary: 9, domain.CatIntellectual: 6,
		},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/dostyq_plaza/IMG_5653.png", "/picture/dostyq_plaza/IMG_5655.png", "/picture/dostyq_plaza/IMG_5654.png"},
			Accessibility: []string{"/picture/dostyq_plaza/IMG_5656.png", "/picture/dostyq_plaza/IMG_5657.png"},
		},
	},
	{
		ID:       "moscow",
		Name:     "ТРЦ Москва",
		Category: "Торговый центр",
		Status:   domain.StatusAccessible,
		Lat:      43.227807, Lng: 76.864544,
		Address:  "8-й микрорайон, 37/1",
		Details:  []string{"Лифт", "Пандус", "Удобные коридоры"},
		Supports: []domain.Category{domain.CatWheelchair, domain.CatMotor},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/moscow/IMG_5673.png", "/picture/moscow/IMG_5676.png", "/picture/moscow/IMG_5677.png"},
			Accessibility: []string{"/picture/moscow/IMG_5674.png", "/picture/moscow/IMG_5675.png"},
		},
	},
	{
		ID:       "mega_park",
		Name:     "Мега парк",
		Category: "Торговый центр",
		Status:   domain.StatusPartial,
		Lat:      43.263743, Lng: 76.928687,
		Address:  "ул. Сейфулина 483",
		Details:  []string{"Частично ровные дорожки", "Навигация"},
		Supports: []domain.Category{domain.CatVision},
		Photos: &domain.PlacePhotos{
			Outside:       []string{"/picture/mega_park/IMG_5651.png", "/picture/mega_park/IMG_5652.png", "/picture/mega_park/IMG_5649.png"},
			Accessibility: []string{"/picture/mega_park/IMG_5648.png", "/picture/mega_park/IMG_5650.png"},
		},
	},
}

// SeedVacancies is the curated listing behind GET /v1/vacancies.
var SeedVacancies = []domain.Vacancy{
	{
		ID:          "vac_operator",
		Title:       "Оператор call-центра (удалённо)",
		Salary:      "от 180 000 ₸",
		Place:       "Алматы, удалённая работа",
		Description: "Приём входящих звонков и консультации клиентов. Гибкий график, обучение за счёт компании.",
		Suitability: "Подходит для людей с нарушениями опорно-двигательного аппарата",
		Supports:    []domain.Category{domain.CatWheelchair, domain.CatMotor, domain.CatTemporary},
		ApplyURL:    "https://hh.kz/vacancy/93281704",
	},
	{
		ID:          "vac_designer",
		Title:       "Графический дизайнер",
		Salary:      "от 250 000 ₸",
		Place:       "Алматы, гибрид",
		Description: "Создание макетов для соцсетей и печатной продукции. Портфолио обязательно.",
		Suitability: "Подходит для людей с нарушением слуха",
		Supports:    []domain.Category{domain.CatHearing, domain.CatMotor, domain.CatTemporary},
		ApplyURL:    "https://hh.kz/vacancy/94102311",
	},
	{
		ID:          "vac_masseur",
		Title:       "Массажист",
		Salary:      "от 300 000 ₸",
		Place:       "Алматы, медицинский центр",
		Description: "Работа в оборудованном кабинете, запись через администратора.",
		Suitability: "Подходит для людей с нарушением зрения",
		Supports:    []domain.Category{domain.CatVision},
		ApplyURL:    "https://hh.kz/vacancy/92877045",
	},
	{
		ID:          "vac_assembler",
		Title:       "Сборщик сувенирной продукции",
		Salary:      "от 150 000 ₸",
		Place:       "Алматы, мастерская",
		Description: "Простая ручная сборка, наставник на рабочем месте.",
		Suitability: "Подходит для людей с интеллектуальной инвалидностью",
		Supports:    []domain.Category{domain.CatIntellectual, domain.CatHearing},
	},
}
