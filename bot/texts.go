package bot

// Translation tables for the conversational surface. Uzbek is the
// fallback for unknown languages and missing keys.
var texts = map[string]map[string]string{
	"uz": {
		"welcome":             "Assalomu alaykum! ZarbdorUn do'koniga xush kelibsiz! 🛍",
		"choose_language":     "Tilni tanlang / Выберите язык:",
		"send_phone":          "Telefon raqamingizni yuboring 📱",
		"own_contact_only":    "Iltimos, o'zingizning kontaktingizni yuboring.",
		"registered":          "✅ Ro'yxatdan o'tdingiz!",
		"main_menu":           "Asosiy menyu:",
		"catalog":             "🛍 Katalog",
		"cart_button":         "🛒 Savatcha",
		"my_orders":           "📦 Mening buyurtmalarim",
		"favorites_button":    "❤️ Sevimlilar",
		"settings":            "⚙️ Sozlamalar",
		"support":             "💬 Yordam",
		"cancel":              "❌ Bekor qilish",
		"back":                "◀️ Orqaga",
		"select_category":     "Kategoriyani tanlang:",
		"no_products":         "Bu kategoriyada mahsulotlar yo'q.",
		"cart_empty":          "Savatchangiz bo'sh.",
		"cart":                "🛒 Savatchangiz:",
		"total":               "Jami",
		"delivery":            "Yetkazib berish",
		"checkout":            "✅ Buyurtma berish",
		"clear_cart":          "🗑 Tozalash",
		"product_added":       "✅ Mahsulot savatchaga qo'shildi!",
		"out_of_stock":        "Afsuski, mahsulot omborda yetarli emas.",
		"enter_name":          "Ism-familiyangizni kiriting:",
		"enter_phone":         "Telefon raqamingizni kiriting:",
		"invalid_phone":       "Noto'g'ri raqam. +998 bilan boshlang.",
		"select_neighborhood": "Mahallani tanlang:",
		"enter_address":       "Manzilingizni kiriting (yoki lokatsiya yuboring):",
		"select_payment":      "To'lov usulini tanlang:",
		"payment_cash":        "💵 Naqd",
		"payment_card":        "💳 Karta",
		"enter_notes":         "Izoh qoldiring (yoki O'tkazish):",
		"skip":                "O'tkazish ➡️",
		"confirm_order":       "Buyurtmani tasdiqlaysizmi?",
		"confirm":             "✅ Tasdiqlash",
		"order_placed":        "✅ Buyurtmangiz qabul qilindi! Tez orada siz bilan bog'lanamiz.",
		"order_cancelled":     "Buyurtma bekor qilindi.",
		"no_orders":           "Sizda hali buyurtmalar yo'q.",
		"favorites_empty":     "Sevimlilar ro'yxati bo'sh.",
		"added_favorite":      "❤️ Sevimlilarga qo'shildi!",
		"removed_favorite":    "💔 Sevimlilardan olib tashlandi.",
		"choose_setting":      "Sozlamalar:",
		"change_language":     "🌐 Tilni o'zgartirish",
		"language_changed":    "✅ Til o'zgartirildi!",
		"support_prompt":      "Xabaringizni yozing, adminlar tez orada javob berishadi:",
		"message_sent":        "✅ Xabaringiz yuborildi!",
		"error":               "Xatolik yuz berdi. Qaytadan urinib ko'ring.",
		"cancelled":           "Bekor qilindi.",
		"invalid_input":       "Noto'g'ri qiymat. Qaytadan kiriting.",
		"price":               "Narx",
		"discount":            "Chegirma narxi",
		"stock":               "Omborda",
		"not_registered":      "Avval ro'yxatdan o'ting: /start",
	},
	"ru": {
		"welcome":             "Здравствуйте! Добро пожаловать в магазин ZarbdorUn! 🛍",
		"choose_language":     "Tilni tanlang / Выберите язык:",
		"send_phone":          "Отправьте свой номер телефона 📱",
		"own_contact_only":    "Пожалуйста, отправьте свой собственный контакт.",
		"registered":          "✅ Вы зарегистрированы!",
		"main_menu":           "Главное меню:",
		"catalog":             "🛍 Каталог",
		"cart_button":         "🛒 Корзина",
		"my_orders":           "📦 Мои заказы",
		"favorites_button":    "❤️ Избранное",
		"settings":            "⚙️ Настройки",
		"support":             "💬 Поддержка",
		"cancel":              "❌ Отмена",
		"back":                "◀️ Назад",
		"select_category":     "Выберите категорию:",
		"no_products":         "В этой категории нет товаров.",
		"cart_empty":          "Ваша корзина пуста.",
		"cart":                "🛒 Ваша корзина:",
		"total":               "Итого",
		"delivery":            "Доставка",
		"checkout":            "✅ Оформить заказ",
		"clear_cart":          "🗑 Очистить",
		"product_added":       "✅ Товар добавлен в корзину!",
		"out_of_stock":        "К сожалению, товара недостаточно на складе.",
		"enter_name":          "Введите имя и фамилию:",
		"enter_phone":         "Введите номер телефона:",
		"invalid_phone":       "Неверный номер. Начните с +998.",
		"select_neighborhood": "Выберите район:",
		"enter_address":       "Введите адрес (или отправьте локацию):",
		"select_payment":      "Выберите способ оплаты:",
		"payment_cash":        "💵 Наличные",
		"payment_card":        "💳 Карта",
		"enter_notes":         "Оставьте комментарий (или Пропустить):",
		"skip":                "Пропустить ➡️",
		"confirm_order":       "Подтверждаете заказ?",
		"confirm":             "✅ Подтвердить",
		"order_placed":        "✅ Ваш заказ принят! Мы скоро свяжемся с вами.",
		"order_cancelled":     "Заказ отменён.",
		"no_orders":           "У вас пока нет заказов.",
		"favorites_empty":     "Список избранного пуст.",
		"added_favorite":      "❤️ Добавлено в избранное!",
		"removed_favorite":    "💔 Удалено из избранного.",
		"choose_setting":      "Настройки:",
		"change_language":     "🌐 Изменить язык",
		"language_changed":    "✅ Язык изменён!",
		"support_prompt":      "Напишите сообщение, админы скоро ответят:",
		"message_sent":        "✅ Ваше сообщение отправлено!",
		"error":               "Произошла ошибка. Попробуйте ещё раз.",
		"cancelled":           "Отменено.",
		"invalid_input":       "Неверное значение. Введите ещё раз.",
		"price":               "Цена",
		"discount":            "Цена со скидкой",
		"stock":               "В наличии",
		"not_registered":      "Сначала зарегистрируйтесь: /start",
	},
}

func t(lang, key string) string {
	table, ok := texts[lang]
	if !ok {
		table = texts["uz"]
	}
	if value, ok := table[key]; ok {
		return value
	}
	if value, ok := texts["uz"][key]; ok {
		return value
	}
	return key
}
