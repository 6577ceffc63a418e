package sheet

import "github.com/matzehuels/triangulator/pkg/grid"

// redMapping places pieces on the RED sheet. Cells without an entry are
// filled from the pool at random.
var redMapping = []Entry{
	// row 0
	{0, 0, grid.HalfB, 816}, {0, 0, grid.HalfA, 815}, {0, 1, grid.HalfA, 807}, {0, 1, grid.HalfB, 806},
	{0, 2, grid.HalfB, 414}, {0, 2, grid.HalfA, 413}, {0, 3, grid.HalfA, 415}, {0, 4, grid.HalfA, 409},
	{0, 5, grid.HalfA, 407}, {0, 5, grid.HalfB, 406}, {0, 6, grid.HalfB, 702}, {0, 6, grid.HalfA, 831},
	{0, 7, grid.HalfA, 825}, {0, 7, grid.HalfB, 824},
	// row 1
	{1, 0, grid.HalfA, 216}, {1, 2, grid.HalfA, 420}, {1, 2, grid.HalfB, 217}, {1, 3, grid.HalfB, 222},
	{1, 4, grid.HalfB, 106}, {1, 5, grid.HalfB, 114}, {1, 5, grid.HalfA, 402}, {1, 6, grid.HalfA, 706},
	// row 2
	{2, 0, grid.HalfB, 422}, {2, 0, grid.HalfA, 423}, {2, 1, grid.HalfA, 421}, {2, 4, grid.HalfB, 220},
	{2, 4, grid.HalfA, 221}, {2, 5, grid.HalfA, 219}, {2, 5, grid.HalfB, 218}, {2, 6, grid.HalfB, 115},
	{2, 6, grid.HalfA, 401}, {2, 7, grid.HalfA, 403}, {2, 7, grid.HalfB, 404},
	// row 3
	{3, 0, grid.HalfA, 416}, {3, 0, grid.HalfB, 709}, {3, 1, grid.HalfB, 708}, {3, 2, grid.HalfB, 302},
	{3, 4, grid.HalfA, 215}, {3, 4, grid.HalfB, 214}, {3, 5, grid.HalfB, 212}, {3, 5, grid.HalfA, 213},
	{3, 6, grid.HalfA, 116}, {3, 6, grid.HalfB, 707}, {3, 7, grid.HalfA, 408},
	// row 4
	{4, 0, grid.HalfB, 813}, {4, 0, grid.HalfA, 117}, {4, 1, grid.HalfA, 118}, {4, 1, grid.HalfB, 119},
	{4, 2, grid.HalfB, 121}, {4, 2, grid.HalfA, 120}, {4, 3, grid.HalfA, 122}, {4, 3, grid.HalfB, 814},
	{4, 4, grid.HalfB, 822}, {4, 4, grid.HalfA, 209}, {4, 5, grid.HalfA, 207}, {4, 5, grid.HalfB, 206},
	{4, 6, grid.HalfB, 712}, {4, 6, grid.HalfA, 711}, {4, 7, grid.HalfB, 823},
	// row 5
	{5, 0, grid.HalfA, 805}, {5, 0, grid.HalfB, 804}, {5, 1, grid.HalfB, 802}, {5, 1, grid.HalfA, 127},
	{5, 2, grid.HalfA, 128}, {5, 2, grid.HalfB, 803}, {5, 3, grid.HalfB, 811}, {5, 3, grid.HalfA, 812},
	{5, 4, grid.HalfA, 820}, {5, 4, grid.HalfB, 821}, {5, 5, grid.HalfB, 827}, {5, 5, grid.HalfA, 202},
	{5, 6, grid.HalfB, 828}, {5, 7, grid.HalfB, 830}, {5, 7, grid.HalfA, 829},
	// row 6
	{6, 0, grid.HalfA, 518}, {6, 1, grid.HalfA, 516}, {6, 2, grid.HalfB, 129}, {6, 2, grid.HalfA, 801},
	{6, 3, grid.HalfA, 809}, {6, 3, grid.HalfB, 810}, {6, 4, grid.HalfB, 818}, {6, 4, grid.HalfA, 819},
	{6, 5, grid.HalfA, 826}, {6, 5, grid.HalfB, 201}, {6, 6, grid.HalfA, 510}, {6, 7, grid.HalfA, 505},
	// row 7
	{7, 1, grid.HalfB, 515}, {7, 2, grid.HalfA, 131}, {7, 2, grid.HalfB, 130}, {7, 3, grid.HalfB, 123},
	{7, 3, grid.HalfA, 808}, {7, 4, grid.HalfA, 817}, {7, 4, grid.HalfB, 208}, {7, 5, grid.HalfB, 204},
	{7, 5, grid.HalfA, 203}, {7, 6, grid.HalfB, 511},
}

// greenMapping places pieces on the GREEN sheet.
var greenMapping = []Entry{
	// row 0
	{0, 0, grid.HalfA, 509}, {0, 1, grid.HalfA, 507}, {0, 1, grid.HalfB, 506}, {0, 3, grid.HalfB, 303},
	{0, 4, grid.HalfB, 608}, {0, 5, grid.HalfB, 512}, {0, 6, grid.HalfB, 104}, {0, 6, grid.HalfA, 105},
	{0, 7, grid.HalfA, 112}, {0, 7, grid.HalfB, 113},
	// row 1
	{1, 1, grid.HalfA, 502}, {1, 3, grid.HalfA, 301}, {1, 4, grid.HalfA, 604}, {1, 4, grid.HalfB, 603},
	{1, 5, grid.HalfB, 601}, {1, 5, grid.HalfA, 513}, {1, 6, grid.HalfA, 102}, {1, 6, grid.HalfB, 103},
	{1, 7, grid.HalfB, 110}, {1, 7, grid.HalfA, 111},
	// row 2
	{2, 1, grid.HalfB, 501}, {2, 2, grid.HalfB, 611}, {2, 2, grid.HalfA, 610}, {2, 3, grid.HalfA, 605},
	{2, 3, grid.HalfB, 308}, {2, 4, grid.HalfA, 701}, {2, 5, grid.HalfA, 704}, {2, 5, grid.HalfB, 514},
	{2, 6, grid.HalfB, 602}, {2, 6, grid.HalfA, 101}, {2, 7, grid.HalfA, 108}, {2, 7, grid.HalfB, 109},
	// row 3
	{3, 0, grid.HalfB, 508}, {3, 1, grid.HalfB, 504}, {3, 1, grid.HalfA, 503}, {3, 2, grid.HalfA, 612},
	{3, 2, grid.HalfB, 314}, {3, 3, grid.HalfB, 310}, {3, 3, grid.HalfA, 309}, {3, 5, grid.HalfA, 517},
	{3, 6, grid.HalfA, 606}, {3, 6, grid.HalfB, 607}, {3, 7, grid.HalfB, 609}, {3, 7, grid.HalfA, 107},
	// row 4
	{4, 5, grid.HalfA, 211}, {4, 5, grid.HalfB, 613}, {4, 6, grid.HalfA, 424}, {4, 7, grid.HalfA, 418},
	{4, 7, grid.HalfB, 705},
	// row 5
	{5, 2, grid.HalfA, 619}, {5, 2, grid.HalfB, 618}, {5, 3, grid.HalfB, 616}, {5, 3, grid.HalfA, 617},
	{5, 4, grid.HalfA, 615}, {5, 4, grid.HalfB, 205}, {5, 5, grid.HalfB, 210}, {5, 5, grid.HalfA, 614},
	{5, 7, grid.HalfA, 703},
	// row 6
	{6, 0, grid.HalfB, 126}, {6, 2, grid.HalfB, 312}, {6, 2, grid.HalfA, 311}, {6, 3, grid.HalfA, 313},
	{6, 3, grid.HalfB, 132}, {6, 5, grid.HalfA, 306}, {6, 5, grid.HalfB, 307}, {6, 7, grid.HalfB, 412},
	// row 7
	{7, 0, grid.HalfA, 124}, {7, 2, grid.HalfA, 315}, {7, 2, grid.HalfB, 419}, {7, 3, grid.HalfB, 417},
	{7, 3, grid.HalfA, 125}, {7, 5, grid.HalfB, 304}, {7, 5, grid.HalfA, 305}, {7, 6, grid.HalfA, 710},
	{7, 6, grid.HalfB, 405}, {7, 7, grid.HalfB, 410}, {7, 7, grid.HalfA, 411},
}

// redOverlays are the label marks of the RED sheet, in compositing order.
var redOverlays = []Mark{
	{"C", 2, 2},
	{"N", 52, 5},
	{"N", 55, 2},
	{"D", 98, 2},
	{"L", 5, 23},
	{"Z", 73, 20},
	{"E", 95, 23},
	{"W", 30, 27},
	{"ComR", 50, 50},
	{"Z", 73, 30},
	{"K", 5, 48},
	{"K", 5, 52},
	{"M", 95, 48},
	{"M", 95, 52},
	{"M", 98, 55},
	{"R", 80, 73},
	{"T", 27, 80},
	{"B", 2, 98},
	{"J", 23, 95},
	{"O", 48, 95},
	{"O", 52, 95},
	{"A", 98, 98},
}

// greenOverlays are the label marks of the GREEN sheet.
var greenOverlays = []Mark{
	{"D", 2, 2},
	{"N", 52, 5},
	{"C", 98, 2},
	{"Z", 20, 27},
	{"W", 70, 23},
	{"W", 77, 20},
	{"M", 5, 52},
	{"K", 98, 55},
	{"R", 30, 73},
	{"R", 30, 77},
	{"ComG", 50, 50},
	{"R", 23, 80},
	{"S", 55, 73},
	{"T", 70, 77},
	{"T", 73, 70},
	{"A", 2, 98},
	{"O", 52, 95},
	{"J", 77, 95},
	{"J", 80, 98},
	{"B", 98, 98},
}
