package catalog

// products is the full artisan bakery catalog. Declaration order is
// significant: lookup passes scan it top to bottom, so earlier entries
// win ties.
var products = []Product{
	{
		Key:           "torta_chocolate",
		Name:          "Torta de Chocolate",
		Price:         25000,
		Description:   "Torta de chocolate artesanal de 3 capas con bizcocho de chocolate belga, relleno de crema batida casera y decorada con fresas frescas de temporada. Perfecta para ocasiones especiales.",
		Category:      "tortas",
		Size:          "Para 8-10 personas",
		Ingredients:   "Chocolate belga, harina premium, crema de leche, fresas frescas, azúcar orgánica",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar refrigerado. Consumir en 3 días",
		Customization: "Disponible en diferentes tamaños. Personalización de decoración disponible",
		Keywords:      []string{"chocolate", "torta", "fresas", "chocolate torta", "torta chocolate", "pastel chocolate", "torta de chocolate"},
	},
	{
		Key:           "cupcakes",
		Name:          "Cupcakes Variados",
		Price:         18000,
		Description:   "Set de 6 cupcakes artesanales con diferentes sabores: chocolate, vainilla, fresa, limón, caramelo y red velvet. Cada uno con decoración única y frosting cremoso hecho a mano.",
		Category:      "cupcakes",
		Size:          "6 unidades",
		Ingredients:   "Harina premium, huevos frescos, mantequilla, azúcar, extractos naturales, frosting de crema",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar a temperatura ambiente. Consumir en 2 días",
		Customization: "Puede personalizarse con sabores específicos según preferencia",
		Keywords:      []string{"cupcakes", "cupcake", "variados", "mini pasteles", "muffins dulces"},
	},
	{
		Key:           "galletas",
		Name:          "Galletas Artesanales",
		Price:         12000,
		Description:   "Galletas caseras elaboradas con ingredientes 100% naturales. Disponibles en sabores: chocolate chips, avena con pasas, mantequilla clásica, y jengibre. Perfectas para el desayuno o merienda.",
		Category:      "galletas",
		Size:          "Paquete de 12 unidades",
		Ingredients:   "Harina orgánica, mantequilla sin sal, azúcar morena, chocolate chips, avena, especias naturales",
		Allergens:     "Contiene gluten y lácteos. Opciones sin gluten disponibles",
		Storage:       "Conservar en recipiente hermético. Consumir en 7 días",
		Customization: "Disponible en diferentes sabores. Opciones veganas disponibles",
		Keywords:      []string{"galletas", "galleta", "artesanales", "caseras", "cookies", "biscuits"},
	},
	{
		Key:           "cheesecake",
		Name:          "Cheesecake de Fresa",
		Price:         22000,
		Description:   "Cheesecake estilo New York con base de galleta casera, crema de queso crema suave y salsa de fresa natural hecha en casa. Decorado con fresas frescas y reducción de fresa. Porción individual o entero disponible.",
		Category:      "cheesecakes",
		Size:          "Para 6-8 personas",
		Ingredients:   "Queso crema premium, galletas caseras, fresas naturales, azúcar, crema de leche, mantequilla",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar refrigerado. Consumir en 4 días",
		Customization: "Disponible en diferentes tamaños. Opciones de fruta: fresa, arándanos, mango",
		Keywords:      []string{"cheesecake", "queso", "fresa", "tarta de queso", "cheesecake de fresa"},
	},
	{
		Key:           "pie_manzana",
		Name:          "Pie de Manzana",
		Price:         20000,
		Description:   "Pie de manzana tradicional con masa casera crujiente, relleno de manzanas frescas cortadas en rodajas, canela en polvo y un toque de azúcar morena. Decorado con enrejado de masa artesanal. Caliente o frío.",
		Category:      "pies",
		Size:          "Para 6-8 personas",
		Ingredients:   "Manzanas frescas, harina premium, mantequilla, canela, azúcar morena, limón",
		Allergens:     "Contiene gluten y lácteos",
		Storage:       "Conservar refrigerado. Se puede calentar antes de servir",
		Customization: "Disponible con helado de vainilla. Opciones de fruta: manzana, pera, durazno",
		Keywords:      []string{"pie", "manzana", "tarta de manzana", "apple pie", "pie de manzana"},
	},
	{
		Key:           "donas",
		Name:          "Donas Glaseadas",
		Price:         15000,
		Description:   "Donas esponjosas artesanales con diferentes tipos de glaseado: chocolate, vainilla, fresa y caramelo. Decoradas con toppings como chips de chocolate, coco, granola y sprinkles de colores.",
		Category:      "donas",
		Size:          "6 unidades",
		Ingredients:   "Harina premium, levadura fresca, leche, azúcar, mantequilla, glaseados caseros",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar a temperatura ambiente. Consumir en 2 días",
		Customization: "Disponible en diferentes sabores de glaseado. Opciones de relleno: crema, mermelada",
		Keywords:      []string{"donas", "dona", "donuts", "rosquillas", "glaseadas", "donas glaseadas"},
	},
	{
		Key:           "torta_vainilla",
		Name:          "Torta de Vainilla",
		Price:         23000,
		Description:   "Torta de vainilla clásica de 3 capas con bizcocho esponjoso, relleno de crema de vainilla francesa y decorada con frutas frescas de temporada. Elegante y deliciosa.",
		Category:      "tortas",
		Size:          "Para 8-10 personas",
		Ingredients:   "Harina premium, extracto de vainilla natural, crema batida, frutas frescas, azúcar",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar refrigerado. Consumir en 3 días",
		Customization: "Disponible con diferentes frutas de temporada",
		Keywords:      []string{"vainilla", "torta vainilla", "torta de vainilla", "pastel vainilla"},
	},
	{
		Key:           "torta_red_velvet",
		Name:          "Torta Red Velvet",
		Price:         28000,
		Description:   "Torta Red Velvet clásica con bizcocho rojo terciopelo, relleno de cream cheese frosting casero y decorada elegantemente. Perfecta para ocasiones especiales y celebraciones.",
		Category:      "tortas",
		Size:          "Para 10-12 personas",
		Ingredients:   "Harina premium, cacao, buttermilk, cream cheese, mantequilla, colorante natural",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar refrigerado. Consumir en 4 días",
		Customization: "Disponible en diferentes tamaños. Decoración personalizada disponible",
		Keywords:      []string{"red velvet", "terciopelo rojo", "torta roja", "red velvet cake"},
	},
	{
		Key:           "torta_tres_leches",
		Name:          "Torta Tres Leches",
		Price:         24000,
		Description:   "Torta Tres Leches tradicional con bizcocho esponjoso empapado en mezcla de tres leches: leche evaporada, leche condensada y crema de leche. Decorada con merengue italiano y cerezas.",
		Category:      "tortas",
		Size:          "Para 8-10 personas",
		Ingredients:   "Harina, huevos, leche condensada, leche evaporada, crema de leche, merengue, cerezas",
		Allergens:     "Contiene gluten, lácteos y huevos",
		Storage:       "Conservar refrigerado. Consumir en 3 días",
		Customization: "Disponible con diferentes frutas: fresa, durazno, piña",
		Keywords:      []string{"tres leches", "torta tres leches", "tres leches cake", "torta humeda"},
	},
	{
		Key:           "muffins",
		Name:          "Muffins Dulces",
		Price:         14000,
		Description:   "Set de 6 muffins grandes y esponjosos disponibles en sabores: chocolate chips, arándanos, nuez y plátano, y zanahoria con especias. Perfectos para el desayuno o merienda.",
		Category:      "muffins",
		Size:          "6 unidades",
		Ingredients:   "Harina premium, huevos, mantequilla, frutas frescas, nueces, especias naturales",
		Allergens:     "Contiene gluten, lácteos, huevos y nueces",
		Storage:       "Conservar a temperatura ambiente. Consumir en 3 días",
		Customization: "Disponible en diferentes sabores según preferencia",
		Keywords:      []string{"muffins", "muffin", "panecillos dulces", "magdalenas grandes"},
	},
	{
		Key:           "brownies",
		Name:          "Brownies de Chocolate",
		Price:         16000,
		Description:   "Brownies densos y húmedos de chocolate belga con chips de chocolate y nueces opcionales. Corteza crujiente y centro cremoso. Disponibles en porciones individuales o bandeja completa.",
		Category:      "brownies",
		Size:          "Bandeja de 12 porciones",
		Ingredients:   "Chocolate belga 70% cacao, mantequilla, huevos, azúcar, harina, nueces opcionales",
		Allergens:     "Contiene gluten, lácteos, huevos y puede contener nueces",
		Storage:       "Conservar a temperatura ambiente. Consumir en 5 días",
		Customization: "Disponible con o sin nueces. Opciones de chocolate: negro, con leche, blanco",
		Keywords:      []string{"brownies", "brownie", "chocolate brownie", "cuadrados de chocolate"},
	},
	{
		Key:           "torta_carrot",
		Name:          "Torta de Zanahoria",
		Price:         26000,
		Description:   "Torta de zanahoria húmeda y especiada con nueces, pasas y cubierta con cream cheese frosting casero. Decorada con zanahorias de azúcar y nueces caramelizadas.",
		Category:      "tortas",
		Size:          "Para 8-10 personas",
		Ingredients:   "Zanahorias frescas ralladas, harina, nueces, pasas, especias, cream cheese, mantequilla",
		Allergens:     "Contiene gluten, lácteos, huevos y nueces",
		Storage:       "Conservar refrigerado. Consumir en 4 días",
		Customization: "Disponible sin nueces. Opciones de decoración disponibles",
		Keywords:      []string{"zanahoria", "carrot cake", "torta de zanahoria", "carrot"},
	},
	{
		Key:           "macarons",
		Name:          "Macarons Artesanales",
		Price:         30000,
		Description:   "Set de 12 macarons franceses en diferentes sabores: fresa, chocolate, limón, vainilla, pistacho y frambuesa. Hechos con técnica tradicional francesa, crujientes por fuera y suaves por dentro.",
		Category:      "macarons",
		Size:          "12 unidades (2 de cada sabor)",
		Ingredients:   "Almendras molidas, azúcar glas, claras de huevo, rellenos de ganache y mermeladas caseras",
		Allergens:     "Contiene almendras, huevos y lácteos",
		Storage:       "Conservar refrigerado. Consumir en 5 días",
		Customization: "Disponible en diferentes combinaciones de sabores",
		Keywords:      []string{"macarons", "macaron", "macarones", "galletas francesas"},
	},
}
