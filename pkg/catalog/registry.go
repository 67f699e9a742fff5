package catalog

import (
	"slices"
	"strings"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// categoryOptions maps a lowercased category name to its facet definitions,
// in display order. Built once at init, read-only afterwards.
var categoryOptions = map[string][]domain.FilterOption{
	"видеокарты": {
		{
			Key:         "memory",
			DisplayName: "Объем видеопамяти",
			Values:      []string{"2 GB", "4 GB", "6 GB", "8 GB", "12 GB", "16 GB", "24 GB", "32 GB"},
		},
		{
			Key:         "memoryType",
			DisplayName: "Тип памяти",
			Values:      []string{"GDDR5", "GDDR5X", "GDDR6", "GDDR6X", "GDDR7", "HBM2", "HBM3"},
		},
		{
			Key:         "gpuClock",
			DisplayName: "Частота GPU",
			Values:      []string{"до 1500 MHz", "1500-1800 MHz", "1800-2100 MHz", "2100-2400 MHz", "от 2400 MHz"},
		},
		{
			Key:         "memoryClock",
			DisplayName: "Частота памяти",
			Values:      []string{"до 8000 MHz", "8000-12000 MHz", "12000-16000 MHz", "16000-20000 MHz", "от 20000 MHz"},
		},
		{
			Key:         "connectors",
			DisplayName: "Разъемы",
			Values:      []string{"1x HDMI", "2x HDMI", "3x HDMI", "1x DP", "2x DP", "3x DP", "4x DP", "HDMI+DP", "USB-C", "DVI"},
		},
		{
			Key:         "busWidth",
			DisplayName: "Разрядность шины",
			Values:      []string{"64-bit", "128-bit", "192-bit", "256-bit", "320-bit", "384-bit", "512-bit"},
		},
	},
	"процессоры": {
		{
			Key:         "socket",
			DisplayName: "Сокет",
			Values:      []string{"LGA 1151", "LGA 1200", "LGA 1700", "AM4", "AM5", "sTRX4", "TRX40", "sWRX8"},
		},
		{
			Key:         "cores",
			DisplayName: "Количество ядер",
			Values:      []string{"2", "4", "6", "8", "10", "12", "14", "16", "18", "24", "32", "64"},
		},
		{
			Key:         "threads",
			DisplayName: "Количество потоков",
			Values:      []string{"4", "8", "12", "16", "20", "24", "32", "48", "64", "96", "128"},
		},
		{
			Key:         "frequency",
			DisplayName: "Базовая частота",
			Values:      []string{"до 3.0 GHz", "3.0-3.5 GHz", "3.5-4.0 GHz", "4.0-4.5 GHz", "от 4.5 GHz"},
		},
		{
			Key:         "maxFrequency",
			DisplayName: "Максимальная частота",
			Values:      []string{"до 4.0 GHz", "4.0-4.5 GHz", "4.5-5.0 GHz", "5.0-5.5 GHz", "от 5.5 GHz"},
		},
		{
			Key:         "cache",
			DisplayName: "Кэш-память",
			Values:      []string{"до 12 MB", "12-20 MB", "20-32 MB", "32-64 MB", "от 64 MB"},
		},
		{
			Key:         "tdp",
			DisplayName: "TDP",
			Values:      []string{"до 65W", "65-95W", "95-125W", "125-170W", "170-250W", "от 250W"},
		},
	},
	"память": {
		{
			Key:         "memoryFormat",
			DisplayName: "Тип памяти",
			Values:      []string{"DDR3", "DDR4", "DDR5", "DDR6"},
		},
		{
			Key:         "memoryCapacity",
			DisplayName: "Объем памяти",
			Values:      []string{"4 GB", "8 GB", "16 GB", "32 GB", "64 GB", "128 GB", "256 GB"},
		},
		{
			Key:         "memoryFrequency",
			DisplayName: "Частота памяти",
			Values: []string{
				"2133 MHz", "2400 MHz", "2666 MHz", "2933 MHz", "3200 MHz",
				"3600 MHz", "4000 MHz", "4400 MHz", "4800 MHz", "5200 MHz",
				"5600 MHz", "6000 MHz", "6400 MHz", "6800 MHz", "7200 MHz",
			},
		},
		{
			Key:         "timings",
			DisplayName: "Тайминги",
			Values: []string{
				"CL14", "CL16", "CL18", "CL19", "CL20", "CL22", "CL24",
				"CL28", "CL30", "CL32", "CL34", "CL36", "CL38", "CL40",
			},
		},
		{
			Key:         "voltage",
			DisplayName: "Напряжение",
			Values:      []string{"1.2V", "1.35V", "1.5V"},
		},
	},
	"материнские платы": {
		{
			Key:         "motherboardSocket",
			DisplayName: "Сокет",
			Values:      []string{"LGA 1151", "LGA 1200", "LGA 1700", "AM4", "AM5", "sTRX4", "TRX40"},
		},
		{
			Key:         "chipset",
			DisplayName: "Чипсет",
			Values: []string{
				"Intel: H310", "Intel: B360", "Intel: B365", "Intel: H370", "Intel: Z370", "Intel: Z390",
				"Intel: H410", "Intel: B460", "Intel: H470", "Intel: Z490",
				"Intel: H510", "Intel: B560", "Intel: H570", "Intel: Z590",
				"Intel: H610", "Intel: B660", "Intel: H670", "Intel: Z690", "Intel: Z790",
				"AMD: A320", "AMD: B350", "AMD: X370",
				"AMD: B450", "AMD: X470",
				"AMD: A520", "AMD: B550", "AMD: X570",
				"AMD: B650", "AMD: B650E", "AMD: X670", "AMD: X670E",
			},
		},
		{
			Key:         "formFactor",
			DisplayName: "Форм-фактор",
			Values:      []string{"Mini-ITX", "Micro-ATX", "ATX", "E-ATX", "XL-ATX"},
		},
		{
			Key:         "memorySlots",
			DisplayName: "Слоты памяти",
			Values:      []string{"2 слота", "4 слота", "8 слотов"},
		},
		{
			Key:         "sataPorts",
			DisplayName: "SATA порты",
			Values:      []string{"2 порта", "4 порта", "6 портов", "8 портов"},
		},
		{
			Key:         "m2Slots",
			DisplayName: "M.2 слоты",
			Values:      []string{"1 слот", "2 слота", "3 слота", "4 слота", "5 слотов"},
		},
	},
	"накопители": {
		{
			Key:         "storageType",
			DisplayName: "Тип накопителя",
			Values:      []string{"HDD 5400 RPM", "HDD 7200 RPM", "SSD SATA", "SSD M.2 SATA", "SSD M.2 NVMe", "SSD PCIe"},
		},
		{
			Key:         "storageCapacity",
			DisplayName: "Объем",
			Values:      []string{"128 GB", "256 GB", "512 GB", "1 TB", "2 TB", "4 TB", "8 TB", "16 TB", "18 TB", "20 TB"},
		},
		{
			Key:         "readSpeed",
			DisplayName: "Скорость чтения",
			Values: []string{
				"до 200 MB/s", "200-500 MB/s", "500-1000 MB/s", "1000-3000 MB/s",
				"3000-5000 MB/s", "5000-7000 MB/s", "7000-10000 MB/s", "от 10000 MB/s",
			},
		},
		{
			Key:         "writeSpeed",
			DisplayName: "Скорость записи",
			Values: []string{
				"до 200 MB/s", "200-500 MB/s", "500-1000 MB/s", "1000-3000 MB/s",
				"3000-5000 MB/s", "5000-7000 MB/s", "7000-10000 MB/s", "от 10000 MB/s",
			},
		},
		{
			Key:         "interfaceType",
			DisplayName: "Интерфейс",
			Values:      []string{"SATA II", "SATA III", "M.2 SATA", "M.2 NVMe PCIe 3.0", "M.2 NVMe PCIe 4.0", "M.2 NVMe PCIe 5.0", "U.2", "PCIe"},
		},
	},
	"блоки питания": {
		{
			Key:         "power",
			DisplayName: "Мощность",
			Values:      []string{"450W", "550W", "650W", "750W", "850W", "1000W", "1200W", "1500W", "1600W", "2000W"},
		},
		{
			Key:         "psuFormat",
			DisplayName: "Форм-фактор",
			Values:      []string{"ATX", "SFX", "SFX-L", "TFX", "Flex ATX"},
		},
		{
			Key:         "efficiency",
			DisplayName: "Сертификат 80 PLUS",
			Values:      []string{"80+", "80+ Bronze", "80+ Silver", "80+ Gold", "80+ Platinum", "80+ Titanium"},
		},
		{
			Key:         "modular",
			DisplayName: "Модульность",
			Values:      []string{"Немодульный", "Полумодульный", "Полностью модульный"},
		},
	},
	"корпуса": {
		{
			Key:         "caseFormat",
			DisplayName: "Форм-фактор",
			Values:      []string{"Mini-Tower", "Mid-Tower", "Full-Tower", "Super-Tower", "Mini-ITX", "Micro-ATX", "ATX", "E-ATX"},
		},
		{
			Key:         "dimensions",
			DisplayName: "Размеры",
			Values:      []string{"Компактный", "Средний", "Большой", "Очень большой"},
		},
		{
			Key:         "material",
			DisplayName: "Материал",
			Values:      []string{"Сталь", "Алюминий", "Закаленное стекло", "Акрил", "Комбинированный"},
		},
		{
			Key:         "fansIncluded",
			DisplayName: "Вентиляторы в комплекте",
			Values:      []string{"Нет", "1 вентилятор", "2 вентилятора", "3 вентилятора", "4+ вентиляторов"},
		},
	},
	"охлаждение": {
		{
			Key:         "coolingType",
			DisplayName: "Тип охлаждения",
			Values:      []string{"Воздушное", "Жидкостное AIO", "Кастомная СВО", "Пассивное", "Гибридное"},
		},
		{
			Key:         "radiatorSize",
			DisplayName: "Размер радиатора",
			Values:      []string{"120 мм", "140 мм", "240 мм", "280 мм", "360 мм", "420 мм", "480 мм"},
		},
		{
			Key:         "fanSpeed",
			DisplayName: "Скорость вентиляторов",
			Values:      []string{"до 1000 RPM", "1000-1500 RPM", "1500-2000 RPM", "2000-2500 RPM", "от 2500 RPM"},
		},
		{
			Key:         "noiseLevel",
			DisplayName: "Уровень шума",
			Values:      []string{"до 20 дБ", "20-30 дБ", "30-40 дБ", "40-50 дБ", "от 50 дБ"},
		},
	},
	"готовые пк": {
		{
			Key:         "processor",
			DisplayName: "Процессор",
			Values: []string{
				"Intel Core i3", "Intel Core i5", "Intel Core i7", "Intel Core i9",
				"AMD Ryzen 3", "AMD Ryzen 5", "AMD Ryzen 7", "AMD Ryzen 9", "AMD Threadripper",
			},
		},
		{
			Key:         "motherboard",
			DisplayName: "Материнская плата",
			Values:      []string{"Бюджетная", "Среднего класса", "Игровая", "Профессиональная", "Премиум"},
		},
		{
			Key:         "ram",
			DisplayName: "Оперативная память",
			Values:      []string{"8 GB", "16 GB", "32 GB", "64 GB", "128 GB", "256 GB"},
		},
		{
			Key:         "graphics",
			DisplayName: "Видеокарта",
			Values: []string{
				"Встроенная", "NVIDIA GTX 16xx", "NVIDIA RTX 3060", "NVIDIA RTX 3070",
				"NVIDIA RTX 3080", "NVIDIA RTX 3090", "NVIDIA RTX 4070", "NVIDIA RTX 4080",
				"NVIDIA RTX 4090", "AMD RX 6600", "AMD RX 6700", "AMD RX 6800",
				"AMD RX 6900", "AMD RX 7800", "AMD RX 7900",
			},
		},
		{
			Key:         "storage",
			DisplayName: "Накопитель",
			Values: []string{
				"256 GB SSD", "512 GB SSD", "1 TB SSD", "2 TB SSD", "1 TB HDD + 256 GB SSD",
				"2 TB HDD + 512 GB SSD", "4 TB HDD + 1 TB SSD", "Только SSD", "Только HDD", "Гибрид",
			},
		},
		{
			Key:         "powerSupply",
			DisplayName: "Блок питания",
			Values:      []string{"500W", "650W", "750W", "850W", "1000W", "1200W+"},
		},
		{
			Key:         "pcCase",
			DisplayName: "Корпус",
			Values:      []string{"Базовый", "Игровой", "Профессиональный", "Премиум", "Кастомный"},
		},
		{
			Key:         "cooling",
			DisplayName: "Охлаждение",
			Values:      []string{"Стандартное", "Улучшенное", "Жидкостное", "Кастомное"},
		},
		{
			Key:         "os",
			DisplayName: "Операционная система",
			Values:      []string{"Windows 10", "Windows 11", "Linux", "Без ОС", "Другая"},
		},
	},
}

// Options returns the facet definitions for a category in display order.
// Lookup is case-insensitive; unknown categories yield an empty slice.
func Options(category string) []domain.FilterOption {
	opts, ok := categoryOptions[strings.ToLower(category)]
	if !ok {
		return nil
	}
	return slices.Clone(opts)
}

// Categories returns the known category names in stable (sorted) order.
func Categories() []string {
	names := make([]string, 0, len(categoryOptions))
	for name := range categoryOptions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
