package seed

type clientSeed struct {
	name    string
	rfc     string
	phone   string
	email   string
	daysAgo int
}

type reservationSeed struct {
	clientID     string
	spaceIDs     []int
	startDaysAgo int
	days         int
}

var clients = []clientSeed{
	{"Alimentos del Norte SA de CV", "ADN850123ABC", "811-234-5678", "contacto@alimentosnorte.mx", 365},
	{"Distribuidora La Fría", "DLF900215XYZ", "811-345-6789", "ventas@lafria.mx", 300},
	{"Mariscos del Pacífico", "MDP920318DEF", "811-456-7890", "info@mariscospacifico.mx", 250},
	{"Carnes Premium Internacional", "CPI880622GHI", "811-567-8901", "contacto@carnespremium.mx", 200},
	{"Productos Congelados MTY", "PCM910430JKL", "811-678-9012", "ventas@congeladosmty.mx", 180},
	{"Helados y Nieves del Valle", "HNV950512MNO", "811-789-0123", "info@heladosvalle.mx", 150},
	{"Pescados y Mariscos del Golfo", "PMG870825PQR", "811-890-1234", "ventas@mariscogolfo.mx", 120},
	{"Frutas Congeladas Tropi-Fresh", "FCT930707STU", "811-901-2345", "contacto@tropifresh.mx", 100},
	{"Distribuidora de Vegetales Frescos", "DVF960918VWX", "811-012-3456", "info@vegetalesfrescos.mx", 90},
	{"Pollos y Aves del Norte", "PAN890204YZA", "811-123-4567", "ventas@pollosnorte.mx", 80},
	{"Lácteos Refrigerados MTY", "LRM920615BCD", "811-234-5670", "contacto@lacteosmty.mx", 70},
	{"Procesadora de Alimentos del Noreste", "PAN880921EFG", "811-345-6781", "info@procesadoranoreste.mx", 60},
	{"Restaurantes Gourmet SA", "RGS910508HIJ", "811-456-7892", "compras@restaurantegourmet.mx", 50},
	{"Hoteles del Centro", "HDC950312KLM", "811-567-8903", "almacen@hotelescentro.mx", 45},
	{"Catering y Eventos Premium", "CEP930724NOP", "811-678-9014", "logistica@cateringpremium.mx", 40},
	{"Supermercados Regionales", "SRE870119QRS", "811-789-0125", "compras@superregionales.mx", 35},
	{"Exportadora de Productos Mexicanos", "EPM940806TUV", "811-890-1236", "ventas@exportadoramex.mx", 30},
	{"Alimentos Orgánicos del Campo", "AOC920225WXY", "811-901-2347", "info@alimentosorganicos.mx", 25},
	{"Comidas Preparadas Express", "CPE960417ZAB", "811-012-3458", "operaciones@comidasexpress.mx", 20},
	{"Panadería Industrial del Norte", "PIN880630CDE", "811-123-4569", "ventas@panaderianorte.mx", 15},
	{"Bebidas y Jugos Naturales", "BJN910503FGH", "811-234-5671", "contacto@bebidasnaturales.mx", 12},
	{"Carnes Frías Premium", "CFP950914IJK", "811-345-6782", "ventas@carnesfrias.mx", 10},
	{"Productos del Mar Atlántico", "PMA870228LMN", "811-456-7893", "info@maratlantico.mx", 8},
	{"Verduras Selectas del Valle", "VSV930611OPQ", "811-567-8904", "ventas@verdurasselectas.mx", 5},
	{"Importadora de Alimentos Asiáticos", "IAA960123RST", "811-678-9015", "importaciones@alimentosasiaticos.mx", 3},
}

var reservations = []reservationSeed{
	{"c1", []int{1, 2, 3, 4}, 5, 30},
	{"c2", []int{8, 9, 10}, 10, 45},
	{"c3", []int{15, 16}, 3, 60},
	{"c4", []int{22, 23, 24, 25}, 15, 90},
	{"c5", []int{30, 31, 32}, 7, 25},
	{"c6", []int{38, 39}, 2, 20},
	{"c7", []int{45, 46, 47}, 12, 40},
	{"c8", []int{52, 53}, 8, 35},
	{"c9", []int{58, 59, 60, 61}, 4, 50},
	{"c10", []int{67, 68}, 20, 70},
	{"c11", []int{74, 75, 76}, 1, 15},
	{"c12", []int{82, 83}, 18, 55},
	{"c13", []int{88, 89, 90}, 6, 28},
	{"c14", []int{5, 6}, 9, 42},
	{"c15", []int{11, 12, 13}, 11, 33},
	{"c16", []int{17, 18, 19, 20}, 14, 48},
	{"c17", []int{26, 27}, 3, 22},
	{"c18", []int{33, 34, 35}, 16, 65},
	{"c19", []int{40, 41}, 5, 18},
	{"c20", []int{48, 49, 50, 51}, 13, 38},
	{"c21", []int{54, 55}, 2, 27},
	{"c22", []int{62, 63, 64}, 19, 52},
	{"c23", []int{69, 70}, 7, 31},
	{"c24", []int{77, 78, 79, 80}, 4, 44},
	{"c25", []int{84, 85}, 10, 26},
	{"c1", []int{91, 92}, 1, 19},
	{"c3", []int{7}, 17, 47},
	{"c5", []int{14}, 8, 36},
	{"c7", []int{21}, 6, 29},
	{"c9", []int{28, 29}, 15, 41},
	{"c11", []int{36, 37}, 2, 23},
	{"c13", []int{42, 43, 44}, 11, 34},
	{"c15", []int{56, 57}, 3, 21},
	{"c17", []int{65, 66}, 12, 39},
	{"c19", []int{71, 72, 73}, 5, 32},
	{"c21", []int{81}, 9, 24},
	{"c23", []int{86, 87}, 4, 37},
	{"c2", []int{93, 94, 95}, 14, 46},
	{"c4", []int{96, 97}, 1, 17},
	{"c6", []int{98, 99, 100}, 10, 43},
}
