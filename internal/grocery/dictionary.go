package grocery

type dictionaryGroup struct {
	category Category
	names    []string
}

// dictionary is the canonical ingredient table. Names are stored folded
// (lowercase, single-spaced, no diacritics). A name appears in exactly one group.
var dictionary = []dictionaryGroup{
	{Produce, []string{
		"apple", "apples", "banana", "bananas", "orange", "oranges", "lemon", "lemons",
		"lime", "limes", "avocado", "avocados", "tomato", "tomatoes", "cherry tomatoes",
		"roma tomatoes", "grape tomatoes", "potato", "potatoes", "sweet potato",
		"sweet potatoes", "russet potatoes", "red potatoes", "yukon gold potatoes",
		"onion", "onions", "red onion", "yellow onion", "white onion", "green onions",
		"scallions", "shallot", "shallots", "garlic", "garlic cloves", "ginger",
		"fresh ginger", "lettuce", "romaine", "romaine lettuce", "iceberg lettuce",
		"spinach", "baby spinach", "kale", "arugula", "mixed greens", "cabbage",
		"red cabbage", "broccoli", "cauliflower", "carrot", "carrots", "celery",
		"cucumber", "cucumbers", "bell pepper", "bell peppers", "red bell pepper",
		"green bell pepper", "jalapeno", "jalapenos", "serrano pepper", "poblano pepper",
		"mushrooms", "cremini mushrooms", "portobello mushrooms", "shiitake mushrooms",
		"zucchini", "yellow squash", "butternut squash", "acorn squash", "eggplant",
		"asparagus", "green beans", "snap peas", "snow peas", "corn on the cob", "beets",
		"radishes", "turnips", "parsnips", "leeks", "fennel", "bok choy",
		"brussels sprouts", "artichoke", "okra", "grapes", "strawberries", "blueberries",
		"raspberries", "blackberries", "cranberries", "cherries", "peach", "peaches",
		"pear", "pears", "plums", "nectarines", "apricots", "mango", "pineapple",
		"papaya", "kiwi", "watermelon", "cantaloupe", "honeydew", "pomegranate",
		"grapefruit", "coconut", "basil", "fresh basil", "cilantro", "parsley",
		"fresh parsley", "flat-leaf parsley", "mint", "fresh mint", "dill", "fresh dill",
		"rosemary", "fresh rosemary", "fresh thyme", "chives", "lemongrass",
		"bean sprouts",
	}},
	{Dairy, []string{
		"milk", "whole milk", "skim milk", "2% milk", "buttermilk", "egg", "eggs",
		"large eggs", "egg whites", "egg yolks", "butter", "unsalted butter",
		"salted butter", "margarine", "ghee", "cheese", "cheddar cheese",
		"sharp cheddar cheese", "mozzarella", "mozzarella cheese", "fresh mozzarella",
		"parmesan", "parmesan cheese", "parmigiano reggiano", "pecorino romano", "feta",
		"feta cheese", "goat cheese", "ricotta", "ricotta cheese", "cream cheese",
		"cottage cheese", "swiss cheese", "provolone", "monterey jack", "pepper jack",
		"colby jack", "gouda", "brie", "blue cheese", "gruyere", "american cheese",
		"shredded cheese", "mascarpone", "yogurt", "greek yogurt", "plain yogurt",
		"vanilla yogurt", "sour cream", "heavy cream", "heavy whipping cream",
		"whipping cream", "whipped cream", "half and half", "light cream",
		"creme fraiche", "almond milk", "oat milk", "soy milk",
	}},
	{Poultry, []string{
		"chicken", "chicken breast", "chicken breasts",
		"boneless skinless chicken breast", "chicken thighs", "chicken thigh",
		"chicken wings", "chicken drumsticks", "chicken tenders", "whole chicken",
		"ground chicken", "chicken sausage", "turkey", "ground turkey", "turkey breast",
		"duck", "duck breast", "cornish hen",
	}},
	{Pork, []string{
		"pork", "pork chops", "pork tenderloin", "pork loin", "pork shoulder",
		"pork butt", "pork belly", "ground pork", "bacon", "thick cut bacon", "ham",
		"ham steak", "ham hock", "sausage", "italian sausage", "breakfast sausage",
		"chorizo", "pancetta", "spare ribs", "baby back ribs", "pork ribs", "bratwurst",
		"kielbasa",
	}},
	{RedMeat, []string{
		"beef", "ground beef", "lean ground beef", "steak", "ribeye", "ribeye steak",
		"sirloin", "sirloin steak", "flank steak", "skirt steak", "new york strip",
		"filet mignon", "chuck roast", "beef chuck", "brisket", "stew meat",
		"beef stew meat", "short ribs", "beef short ribs", "pot roast", "lamb",
		"ground lamb", "lamb chops", "leg of lamb", "veal", "ground veal", "bison",
		"ground bison", "venison", "oxtail",
	}},
	{Seafood, []string{
		"fish", "salmon", "salmon fillets", "smoked salmon", "tuna steak", "cod",
		"tilapia", "halibut", "mahi mahi", "trout", "catfish", "sea bass", "snapper",
		"swordfish", "shrimp", "jumbo shrimp", "prawns", "scallops", "crab", "crab meat",
		"lobster", "lobster tails", "clams", "mussels", "oysters", "squid", "calamari",
		"crawfish",
	}},
	{Deli, []string{
		"deli meat", "sliced turkey", "sliced ham", "roast beef", "salami", "pepperoni",
		"prosciutto", "pastrami", "bologna", "mortadella", "capicola", "hummus",
		"rotisserie chicken", "coleslaw", "potato salad", "chicken salad", "hot dogs",
	}},
	{Bread, []string{
		"bread", "white bread", "whole wheat bread", "sourdough", "sourdough bread",
		"rye bread", "french bread", "baguette", "ciabatta", "brioche", "challah",
		"bagel", "bagels", "english muffins", "muffins", "croissants", "dinner rolls",
		"rolls", "hamburger buns", "hot dog buns", "buns", "pita", "pita bread", "naan",
		"flatbread", "tortillas", "flour tortillas", "corn tortillas", "breadcrumbs",
		"biscuits", "pizza dough",
	}},
	{Frozen, []string{
		"ice cream", "frozen pizza", "frozen peas", "frozen corn", "frozen spinach",
		"frozen vegetables", "frozen broccoli", "frozen fruit", "frozen berries",
		"frozen waffles", "frozen shrimp", "frozen meatballs", "frozen dinners",
		"popsicles", "frozen yogurt", "sorbet", "puff pastry", "pie crust",
		"phyllo dough", "tater tots", "french fries", "hash browns",
	}},
	{CannedGoods, []string{
		"flour", "all-purpose flour", "all purpose flour", "bread flour",
		"whole wheat flour", "almond flour", "cornstarch", "cornmeal", "sugar",
		"granulated sugar", "brown sugar", "powdered sugar", "confectioners sugar",
		"baking soda", "baking powder", "yeast", "active dry yeast", "cocoa powder",
		"chocolate chips", "rice", "white rice", "brown rice", "jasmine rice",
		"basmati rice", "arborio rice", "wild rice", "quinoa", "couscous", "oats",
		"rolled oats", "oatmeal", "pasta", "spaghetti", "penne", "fettuccine", "linguine",
		"macaroni", "elbow macaroni", "lasagna noodles", "egg noodles", "orzo",
		"rigatoni", "noodles", "lentils", "dried beans", "black beans", "pinto beans",
		"kidney beans", "cannellini beans", "chickpeas", "garbanzo beans", "navy beans",
		"refried beans", "baked beans", "canned tomatoes", "diced tomatoes",
		"crushed tomatoes", "tomato sauce", "tomato paste", "whole peeled tomatoes",
		"marinara sauce", "pasta sauce", "pizza sauce", "chicken broth", "chicken stock",
		"beef broth", "beef stock", "vegetable broth", "vegetable stock",
		"bouillon cubes", "soup", "cream of mushroom soup", "cream of chicken soup",
		"canned corn", "canned tuna", "tuna", "canned salmon", "coconut milk",
		"evaporated milk", "sweetened condensed milk", "olive oil",
		"extra virgin olive oil", "vegetable oil", "canola oil", "coconut oil",
		"sesame oil", "avocado oil", "cooking spray", "vinegar", "white vinegar",
		"apple cider vinegar", "balsamic vinegar", "red wine vinegar", "rice vinegar",
		"ketchup", "mustard", "dijon mustard", "yellow mustard", "mayonnaise", "mayo",
		"bbq sauce", "barbecue sauce", "worcestershire sauce", "hot sauce", "steak sauce", "salsa",
		"relish", "pickles", "olives", "capers", "anchovies", "sardines", "honey",
		"maple syrup", "molasses", "corn syrup", "peanut butter", "almond butter",
		"jelly", "jam", "nutella", "cereal", "granola", "pancake mix",
		"panko breadcrumbs", "gelatin", "pudding mix", "cake mix", "brownie mix",
		"raisins", "dried cranberries", "almonds", "walnuts", "pecans", "cashews",
		"peanuts", "pine nuts", "pistachios", "sunflower seeds", "chia seeds",
		"flax seeds", "sesame seeds", "shredded coconut", "applesauce",
		"canned pumpkin", "pumpkin puree", "artichoke hearts", "roasted red peppers",
		"sun-dried tomatoes", "green chiles",
	}},
	{Spices, []string{
		"salt", "kosher salt", "sea salt", "table salt", "pepper", "black pepper",
		"ground black pepper", "peppercorns", "garlic powder", "onion powder",
		"paprika", "smoked paprika", "cumin", "ground cumin", "chili powder", "cayenne",
		"cayenne pepper", "red pepper flakes", "crushed red pepper", "oregano",
		"dried oregano", "dried basil", "thyme", "dried thyme", "bay leaves",
		"cinnamon", "ground cinnamon", "nutmeg", "ground nutmeg", "ground ginger",
		"cloves", "ground cloves", "allspice", "cardamom", "coriander",
		"ground coriander", "turmeric", "curry powder", "garam masala",
		"italian seasoning", "taco seasoning", "cajun seasoning", "old bay",
		"poultry seasoning", "pumpkin pie spice", "sage", "dried sage",
		"dried parsley", "dill weed", "mustard seed", "fennel seed", "celery salt",
		"garlic salt", "seasoned salt", "vanilla extract", "almond extract",
		"vanilla bean", "saffron", "star anise", "five spice", "sumac",
		"herbes de provence", "lemon pepper", "chipotle powder", "ancho chili powder",
	}},
	{EthnicFoods, []string{
		"soy sauce", "low sodium soy sauce", "tamari", "fish sauce", "oyster sauce",
		"hoisin sauce", "sriracha", "sambal oelek", "gochujang", "miso", "miso paste",
		"mirin", "rice wine", "curry paste", "red curry paste", "green curry paste",
		"tahini", "rice noodles", "ramen noodles", "udon noodles", "soba noodles",
		"rice paper", "wonton wrappers", "nori", "seaweed", "kimchi", "tofu",
		"firm tofu", "tempeh", "coconut aminos", "chipotle peppers in adobo",
		"enchilada sauce", "taco shells", "tostadas", "harissa", "wasabi",
		"pickled ginger", "panko",
	}},
	{Snacks, []string{
		"chips", "potato chips", "tortilla chips", "pita chips", "crackers",
		"graham crackers", "saltines", "cookies", "popcorn", "pretzels",
		"granola bars", "protein bars", "trail mix", "candy", "chocolate",
		"dark chocolate", "gummy bears", "fruit snacks", "rice cakes", "beef jerky",
		"mixed nuts", "cheese puffs", "marshmallows",
	}},
	{Beverages, []string{
		"bottled water", "sparkling water", "coconut water", "juice", "orange juice",
		"apple juice", "cranberry juice", "lemonade", "coffee", "ground coffee",
		"coffee beans", "espresso", "tea", "green tea", "black tea", "tea bags", "soda",
		"cola", "ginger ale", "club soda", "seltzer", "beer", "wine", "red wine",
		"white wine", "dry white wine", "champagne", "vodka", "tequila", "whiskey",
		"bourbon", "kombucha", "sports drinks", "energy drinks", "hot chocolate",
	}},
	{HouseholdGoods, []string{
		"paper towels", "toilet paper", "napkins", "paper plates", "plastic wrap",
		"aluminum foil", "foil", "parchment paper", "wax paper", "zip bags",
		"ziplock bags", "sandwich bags", "freezer bags", "trash bags", "garbage bags",
		"light bulbs", "batteries", "candles", "matches", "toothpaste", "toothbrush",
		"shampoo", "conditioner", "body wash", "deodorant", "lotion", "sunscreen",
		"razors", "tissues", "cotton balls", "band-aids", "vitamins", "cupcake liners",
		"coffee filters", "storage containers",
	}},
	{CleaningSupplies, []string{
		"dish soap", "dishwasher detergent", "laundry detergent", "fabric softener",
		"dryer sheets", "bleach", "all-purpose cleaner", "glass cleaner",
		"disinfecting wipes", "sponges", "scrub brush", "rubber gloves",
		"toilet bowl cleaner", "stain remover", "hand soap", "soap",
	}},
	{Pets, []string{
		"dog food", "cat food", "dog treats", "cat treats", "cat litter", "kitty litter",
		"bird seed", "fish food", "pet food", "rawhide", "chew toys", "flea treatment",
	}},
}

type keywordGroup struct {
	category Category
	keywords []string
}

// keywordFallback is consulted in order when neither the exact nor the
// substring pass finds a dictionary entry.
var keywordFallback = []keywordGroup{
	{Dairy, []string{"milk", "cheese", "cream", "yogurt", "butter", "egg"}},
	{Poultry, []string{"chicken", "turkey", "duck", "hen"}},
	{RedMeat, []string{"beef", "steak", "lamb", "veal", "bison", "venison"}},
	{Pork, []string{"pork", "bacon", "ham", "sausage"}},
	{Seafood, []string{"fish", "shrimp", "salmon", "tuna", "crab", "lobster", "clam", "mussel", "oyster", "scallop", "cod"}},
	{Frozen, []string{"frozen", "ice cream", "popsicle"}},
	{Bread, []string{"bread", "bun", "roll", "bagel", "tortilla", "muffin"}},
	{CannedGoods, []string{"canned", "dried", "flour", "sugar", "rice", "pasta", "noodle", "bean", "sauce", "broth", "stock", "oil", "vinegar"}},
	{Beverages, []string{"juice", "soda", "coffee", "tea", "wine", "beer", "drink"}},
	{Snacks, []string{"chip", "cracker", "cookie", "candy", "snack"}},
	{Spices, []string{"spice", "seasoning", "powder", "ground", "extract", "salt", "pepper"}},
	{CleaningSupplies, []string{"cleaner", "detergent", "bleach", "wipes", "soap"}},
	{Pets, []string{"dog", "cat", "pet", "litter"}},
}
