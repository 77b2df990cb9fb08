package quant

// qmInvBase holds the inverse quantizer-matrix weights of every level and
// plane type in compact form: the lower triangle of the symmetric 32x32
// matrix followed by the 16x32 matrix. All other sizes are sampled from
// these two.
var qmInvBase = [NumQMLevels - 1][2][qmBaseSize]uint8{
	{
		{ // level 0, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 33, 33, 32,
			32, 32, 33, 34, 35, 34, 34, 33, 34, 35, 37, 39, 35, 34, 34, 35,
			36, 37, 41, 43, 36, 35, 34, 35, 36, 38, 42, 45, 48, 39, 38, 37,
			38, 39, 40, 45, 47, 50, 54, 44, 42, 41, 41, 42, 42, 47, 50, 54,
			58, 63, 46, 44, 42, 43, 44, 44, 49, 52, 55, 59, 65, 67, 48, 46,
			44, 45, 45, 46, 51, 53, 57, 61, 67, 69, 71, 54, 51, 49, 49, 50,
			49, 54, 57, 60, 65, 71, 74, 76, 82, 59, 56, 54, 54, 54, 53, 58,
			61, 64, 69, 75, 78, 80, 87, 92, 62, 59, 56, 56, 56, 55, 60, 63,
			66, 71, 77, 80, 83, 89, 95, 98, 65, 62, 59, 59, 59, 58, 63, 65,
			68, 73, 79, 82, 85, 92, 98, 101, 105, 71, 68, 65, 64, 64, 63, 68,
			70, 73, 78, 84, 87, 90, 97, 103, 107, 111, 117, 80, 76, 72, 72, 71,
			69, 74, 76, 79, 84, 90, 93, 96, 104, 110, 114, 118, 125, 134, 81, 77,
			73, 73, 72, 70, 75, 77, 80, 85, 91, 94, 97, 105, 111, 115, 119, 126,
			135, 137, 83, 78, 75, 74, 74, 72, 76, 79, 81, 86, 92, 95, 99, 106,
			113, 117, 121, 128, 137, 138, 140, 88, 84, 80, 79, 78, 76, 80, 82, 85,
			91, 95, 98, 103, 111, 115, 119, 126, 134, 139, 144, 147, 152, 91, 86, 83,
			82, 81, 79, 81, 84, 88, 92, 95, 100, 107, 110, 115, 123, 127, 132, 140,
			147, 151, 154, 159, 94, 89, 86, 85, 84, 82, 82, 86, 90, 92, 97, 103,
			105, 111, 119, 121, 128, 136, 139, 146, 156, 158, 161, 166, 97, 92, 90, 88,
			86, 85, 84, 89, 91, 95, 100, 102, 108, 114, 116, 125, 130, 133, 143, 148,
			152, 163, 166, 168, 174, 101, 95, 93, 91, 89, 89, 87, 91, 93, 98, 101,
			105, 111, 113, 120, 126, 130, 138, 142, 149, 157, 159, 171, 174, 176, 183, 104,
			99, 97, 94, 93, 93, 90, 92, 96, 100, 102, 108, 111, 116, 122, 125, 134,
			137, 144, 151, 155, 165, 169, 179, 182, 184, 191, 107, 102, 101, 97, 96, 96,
			93, 93, 99, 101, 105, 110, 113, 120, 122, 129, 133, 140, 146, 150, 161, 163,
			173, 178, 187, 191, 193, 200, 111, 105, 104, 101, 100, 99, 97, 96, 102, 103,
			109, 111, 117, 120, 125, 131, 135, 143, 146, 156, 158, 168, 173, 180, 189, 195,
			200, 202, 210, 115, 109, 108, 104, 104, 102, 101, 100, 103, 106, 111, 113, 119,
			121, 129, 131, 140, 142, 151, 155, 162, 168, 176, 183, 188, 199, 204, 210, 212,
			220, 119, 113, 112, 107, 107, 106, 105, 103, 105, 110, 112, 117, 120, 125, 130,
			135, 140, 145, 152, 157, 165, 169, 179, 183, 193, 197, 210, 214, 220, 222, 231,
			123, 116, 116, 111, 111, 109, 110, 107, 107, 114, 114, 121, 122, 130, 130, 140,
			140, 150, 151, 163, 164, 176, 177, 190, 191, 204, 206, 222, 224, 230, 232, 242,
			32, 31, 32, 34, 36, 44, 53, 59, 65, 79, 87, 90, 93, 96, 99, 102,
			31, 32, 32, 34, 35, 42, 51, 56, 62, 75, 82, 85, 88, 91, 94, 97,
			31, 32, 33, 33, 34, 41, 49, 54, 59, 72, 78, 82, 86, 90, 93, 97,
			31, 32, 33, 34, 35, 41, 49, 54, 59, 71, 78, 81, 84, 87, 90, 93,
			32, 32, 34, 35, 36, 42, 50, 54, 59, 71, 77, 80, 82, 86, 89, 93,
			32, 33, 35, 37, 38, 42, 49, 53, 58, 69, 75, 78, 82, 86, 89, 92,
			34, 34, 37, 39, 42, 48, 54, 58, 63, 73, 79, 78, 80, 83, 88, 92,
			35, 34, 37, 41, 45, 50, 57, 61, 65, 76, 82, 83, 84, 84, 87, 90,
			36, 34, 38, 43, 48, 54, 60, 64, 68, 78, 84, 87, 86, 89, 90, 90,
			39, 37, 40, 45, 50, 58, 65, 69, 73, 84, 89, 89, 91, 91, 93, 96,
			44, 41, 43, 48, 53, 63, 71, 75, 79, 90, 95, 93, 94, 95, 97, 97,
			46, 43, 44, 49, 55, 65, 73, 78, 82, 93, 98, 100, 98, 100, 99, 103,
			48, 45, 46, 51, 56, 67, 76, 80, 85, 96, 102, 102, 105, 102, 105, 104,
			53, 49, 50, 54, 60, 71, 82, 87, 92, 103, 109, 107, 107, 110, 107, 111,
			58, 54, 54, 58, 63, 75, 87, 92, 98, 110, 116, 115, 112, 111, 115, 112,
			61, 57, 56, 60, 66, 77, 89, 95, 101, 114, 120, 118, 119, 118, 116, 120,
			65, 60, 58, 63, 68, 79, 92, 98, 105, 118, 124, 123, 122, 123, 124, 121,
			71, 65, 63, 68, 73, 84, 97, 103, 111, 125, 132, 132, 130, 128, 127, 130,
			79, 72, 70, 74, 79, 90, 104, 110, 118, 133, 141, 136, 135, 135, 135, 131,
			81, 74, 71, 75, 80, 91, 105, 112, 119, 135, 142, 140, 140, 138, 139, 142,
			82, 75, 72, 76, 81, 92, 106, 113, 121, 136, 144, 151, 149, 149, 146, 143,
			88, 80, 77, 80, 85, 97, 108, 115, 126, 142, 149, 153, 153, 152, 152, 154,
			91, 83, 80, 81, 88, 100, 106, 114, 130, 142, 148, 155, 162, 160, 159, 155,
			94, 85, 83, 82, 91, 100, 105, 118, 131, 137, 153, 160, 165, 167, 166, 168,
			97, 88, 86, 85, 94, 100, 107, 123, 128, 140, 157, 161, 167, 173, 171, 169,
			100, 91, 89, 87, 97, 100, 111, 121, 127, 145, 152, 164, 173, 178, 182, 181,
			103, 94, 93, 90, 98, 101, 114, 120, 131, 144, 150, 170, 174, 180, 186, 183,
			107, 97, 96, 93, 100, 104, 117, 119, 136, 142, 155, 168, 177, 187, 191, 198,
			110, 101, 100, 97, 101, 108, 117, 123, 138, 141, 161, 165, 183, 188, 193, 200,
			114, 104, 104, 100, 103, 112, 117, 127, 137, 146, 159, 167, 185, 190, 201, 206,
			118, 108, 107, 103, 105, 115, 118, 131, 136, 151, 157, 172, 182, 197, 203, 208,
			122, 111, 111, 107, 107, 119, 119, 136, 136, 156, 156, 178, 179, 203, 204, 217,
		},
		{ // level 0, chroma
			32, 31, 31, 30, 31, 32, 32, 33, 33, 35, 33, 34, 35, 37, 39, 36,
			38, 40, 41, 43, 47, 41, 42, 42, 43, 45, 47, 48, 45, 45, 44, 45,
			46, 47, 49, 50, 49, 47, 46, 47, 47, 48, 50, 51, 53, 48, 47, 45,
			46, 46, 46, 49, 51, 53, 54, 49, 47, 45, 45, 45, 45, 49, 51, 53,
			55, 58, 50, 47, 45, 46, 46, 46, 49, 51, 54, 56, 59, 60, 50, 48,
			46, 46, 46, 46, 50, 52, 54, 56, 60, 60, 61, 52, 50, 47, 47, 47,
			47, 50, 52, 54, 57, 61, 62, 63, 66, 54, 52, 49, 49, 49, 48, 52,
			53, 55, 58, 62, 64, 65, 68, 71, 56, 53, 51, 50, 50, 49, 52, 54,
			56, 59, 63, 64, 66, 69, 72, 73, 57, 54, 52, 51, 51, 50, 53, 55,
			56, 60, 63, 65, 67, 70, 73, 75, 76, 60, 57, 54, 54, 53, 52, 55,
			57, 58, 61, 65, 67, 68, 72, 75, 77, 79, 82, 63, 60, 57, 57, 56,
			54, 57, 59, 60, 63, 67, 69, 71, 75, 78, 80, 82, 85, 89, 64, 61,
			58, 57, 57, 55, 58, 59, 61, 64, 67, 69, 71, 75, 78, 80, 82, 85,
			89, 90, 65, 61, 58, 58, 57, 55, 58, 60, 61, 64, 68, 70, 71, 75,
			79, 81, 83, 86, 90, 91, 91, 67, 63, 61, 60, 59, 57, 60, 61, 63,
			66, 69, 70, 73, 77, 79, 81, 85, 88, 90, 92, 94, 96, 68, 64, 62,
			61, 60, 58, 59, 61, 64, 66, 67, 71, 74, 75, 78, 82, 84, 86, 90,
			93, 94, 96, 98, 69, 65, 63, 62, 61, 59, 59, 62, 64, 65, 68, 71,
			72, 75, 79, 80, 83, 87, 89, 92, 96, 97, 98, 100, 70, 66, 64, 63,
			62, 61, 60, 63, 64, 66, 69, 70, 73, 76, 77, 81, 84, 85, 89, 92,
			93, 98, 99, 100, 102, 71, 67, 66, 64, 63, 62, 61, 63, 64, 67, 68,
			70, 74, 75, 78, 81, 83, 86, 88, 91, 94, 95, 100, 101, 102, 104, 72,
			68, 67, 65, 64, 64, 61, 63, 65, 67, 68, 71, 73, 75, 78, 79, 84,
			85, 88, 91, 93, 97, 98, 102, 103, 104, 106, 73, 69, 68, 66, 65, 65,
			63, 63, 66, 67, 69, 71, 73, 76, 77, 81, 82, 85, 88, 90, 94, 95,
			99, 101, 104, 105, 106, 109, 74, 70, 70, 67, 66, 66, 64, 63, 66, 67,
			70, 71, 74, 75, 78, 80, 82, 86, 87, 91, 92, 96, 98, 101, 104, 106,
			108, 108, 111, 75, 71, 71, 68, 68, 67, 66, 64, 66, 68, 70, 71, 74,
			75, 79, 79, 84, 84, 88, 90, 93, 95, 98, 101, 103, 107, 108, 110, 111,
			113, 76, 72, 72, 69, 69, 68, 67, 65, 66, 69, 70, 72, 74, 76, 78,
			81, 83, 85, 88, 90, 93, 95, 98, 100, 104, 105, 109, 111, 112, 113, 116,
			78, 74, 74, 70, 70, 69, 69, 66, 66, 70, 70, 74, 74, 77, 78, 82,
			82, 86, 87, 92, 92, 96, 97, 102, 102, 107, 107, 112, 113, 115, 115, 118,
			32, 31, 37, 42, 48, 49, 52, 54, 57, 63, 66, 67, 68, 69, 71, 72,
			31, 31, 38, 42, 47, 47, 50, 52, 54, 60, 63, 64, 65, 66, 67, 68,
			30, 32, 40, 42, 46, 45, 48, 50, 52, 57, 60, 62, 63, 65, 66, 68,
			32, 34, 41, 44, 46, 45, 48, 49, 51, 57, 59, 61, 62, 63, 64, 65,
			33, 36, 43, 45, 47, 46, 47, 49, 51, 56, 59, 60, 60, 62, 63, 65,
			37, 40, 47, 47, 47, 45, 47, 48, 50, 54, 57, 58, 60, 61, 62, 63,
			42, 43, 47, 48, 50, 49, 50, 52, 53, 57, 60, 58, 59, 60, 62, 63,
			45, 44, 47, 49, 51, 51, 52, 54, 55, 59, 61, 61, 61, 60, 61, 61,
			49, 46, 48, 50, 53, 53, 54, 55, 57, 60, 62, 63, 62, 63, 62, 62,
			48, 46, 47, 50, 53, 56, 57, 59, 60, 64, 66, 65, 65, 64, 64, 65,
			49, 45, 46, 49, 53, 58, 61, 62, 64, 67, 69, 67, 66, 66, 66, 65,
			49, 46, 46, 49, 53, 59, 62, 64, 65, 69, 71, 70, 68, 68, 67, 68,
			50, 46, 46, 50, 54, 59, 64, 65, 67, 71, 73, 72, 72, 70, 70, 69,
			52, 48, 47, 50, 54, 61, 66, 68, 71, 75, 77, 74, 73, 73, 71, 72,
			54, 50, 49, 52, 55, 62, 68, 71, 73, 78, 80, 78, 76, 74, 75, 73,
			55, 51, 49, 52, 56, 63, 69, 72, 75, 80, 82, 80, 79, 78, 76, 77,
			57, 52, 50, 53, 56, 64, 70, 73, 76, 82, 84, 82, 80, 80, 79, 77,
			60, 54, 52, 55, 58, 65, 72, 75, 79, 85, 88, 86, 84, 82, 81, 81,
			63, 57, 55, 58, 60, 67, 75, 78, 82, 89, 92, 88, 87, 85, 84, 81,
			64, 58, 55, 58, 61, 68, 75, 78, 82, 89, 92, 90, 89, 87, 86, 86,
			64, 59, 56, 58, 61, 68, 75, 79, 83, 90, 93, 95, 93, 91, 89, 87,
			67, 61, 58, 60, 63, 69, 76, 79, 85, 92, 95, 96, 94, 92, 91, 91,
			68, 62, 59, 60, 64, 71, 74, 78, 86, 91, 94, 96, 98, 96, 94, 91,
			69, 62, 60, 60, 65, 70, 72, 79, 85, 88, 95, 98, 99, 98, 97, 96,
			70, 63, 62, 60, 66, 69, 73, 81, 83, 89, 96, 97, 99, 101, 98, 97,
			71, 64, 63, 61, 67, 68, 74, 79, 82, 90, 93, 98, 102, 102, 102, 101,
			72, 65, 64, 62, 66, 68, 75, 78, 83, 89, 92, 100, 101, 103, 104, 102,
			73, 66, 65, 63, 66, 69, 75, 76, 84, 87, 93, 98, 102, 105, 106, 107,
			74, 67, 67, 64, 66, 70, 74, 77, 84, 86, 94, 96, 103, 105, 106, 107,
			75, 68, 68, 65, 66, 71, 74, 78, 83, 87, 93, 96, 103, 105, 109, 109,
			76, 69, 69, 66, 67, 72, 73, 80, 82, 88, 91, 97, 101, 107, 109, 110,
			77, 70, 70, 67, 67, 73, 73, 81, 81, 90, 90, 99, 99, 108, 108, 113,
		},
	},
	{
		{ // level 1, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 33, 32,
			32, 32, 33, 34, 35, 32, 33, 33, 33, 34, 36, 36, 34, 34, 33, 34,
			35, 37, 38, 39, 36, 35, 34, 35, 36, 38, 40, 42, 48, 38, 37, 36,
			36, 38, 39, 41, 44, 50, 51, 39, 38, 37, 38, 39, 40, 42, 45, 50,
			52, 54, 44, 42, 41, 41, 42, 42, 44, 47, 54, 56, 58, 63, 47, 45,
			44, 44, 45, 45, 47, 50, 56, 58, 60, 66, 69, 49, 47, 46, 45, 46,
			46, 48, 51, 57, 60, 62, 68, 71, 73, 54, 51, 50, 49, 50, 49, 51,
			54, 60, 63, 65, 71, 75, 77, 82, 59, 56, 54, 54, 54, 53, 55, 58,
			64, 67, 69, 75, 79, 81, 87, 92, 61, 58, 56, 56, 56, 55, 57, 60,
			65, 68, 70, 77, 81, 83, 89, 94, 97, 65, 62, 60, 59, 59, 58, 60,
			63, 68, 71, 73, 79, 84, 87, 92, 98, 101, 105, 71, 68, 65, 65, 64,
			63, 65, 68, 73, 76, 78, 84, 89, 92, 97, 103, 106, 111, 117, 76, 72,
			70, 69, 68, 66, 68, 71, 76, 79, 81, 88, 92, 95, 101, 107, 110, 115,
			122, 127, 80, 76, 73, 72, 71, 69, 71, 74, 79, 82, 84, 90, 95, 98,
			104, 110, 113, 118, 125, 130, 134, 83, 78, 76, 75, 74, 72, 73, 76, 81,
			84, 86, 92, 97, 100, 106, 113, 116, 121, 128, 133, 137, 140, 86, 82, 79,
			78, 77, 74, 76, 79, 84, 87, 89, 95, 100, 103, 109, 116, 119, 124, 131,
			136, 140, 144, 147, 89, 85, 82, 81, 79, 78, 78, 82, 86, 87, 92, 97,
			100, 105, 112, 114, 120, 128, 131, 136, 146, 147, 150, 155, 92, 88, 85, 84,
			82, 81, 80, 85, 86, 90, 95, 97, 102, 107, 110, 117, 122, 125, 134, 138,
			142, 152, 154, 156, 162, 95, 90, 88, 86, 85, 84, 82, 86, 88, 93, 95,
			99, 105, 106, 113, 118, 121, 129, 132, 139, 146, 148, 159, 161, 163, 169, 98,
			93, 91, 89, 88, 87, 85, 87, 90, 94, 96, 102, 104, 109, 114, 117, 126,
			128, 134, 141, 145, 154, 157, 166, 168, 170, 176, 101, 96, 95, 92, 91, 90,
			88, 88, 93, 95, 99, 103, 106, 112, 114, 121, 124, 131, 136, 140, 149, 151,
			160, 165, 173, 176, 178, 184, 104, 99, 98, 95, 94, 93, 91, 90, 95, 96,
			102, 103, 109, 112, 117, 122, 125, 133, 136, 145, 146, 156, 160, 167, 174, 180,
			184, 186, 193, 108, 102, 101, 98, 97, 96, 95, 93, 97, 100, 104, 106, 111,
			113, 121, 122, 130, 132, 140, 143, 150, 155, 162, 169, 174, 183, 188, 192, 194,
			201, 111, 105, 105, 101, 100, 99, 98, 96, 98, 103, 105, 109, 112, 117, 121,
			125, 130, 135, 141, 146, 152, 156, 165, 169, 178, 181, 193, 196, 201, 202, 210,
			114, 109, 109, 104, 104, 102, 102, 99, 100, 106, 106, 113, 113, 120, 121, 129,
			130, 139, 140, 151, 151, 162, 162, 175, 176, 187, 188, 203, 204, 210, 211, 219,
			32, 31, 32, 32, 36, 44, 47, 53, 65, 73, 79, 87, 90, 93, 96, 99,
			31, 32, 32, 33, 35, 42, 45, 51, 62, 69, 75, 83, 86, 88, 91, 94,
			31, 32, 32, 33, 35, 41, 44, 49, 60, 67, 72, 80, 84, 87, 90, 94,
			31, 32, 33, 33, 35, 41, 44, 49, 59, 66, 71, 79, 82, 84, 87, 90,
			32, 32, 34, 34, 36, 42, 45, 50, 59, 65, 71, 78, 80, 83, 87, 90,
			32, 33, 35, 36, 38, 42, 45, 49, 58, 64, 69, 76, 80, 83, 86, 88,
			32, 33, 35, 36, 40, 44, 47, 51, 60, 66, 71, 76, 78, 81, 85, 89,
			34, 34, 36, 38, 42, 48, 50, 54, 63, 69, 73, 80, 82, 81, 84, 86,
			36, 34, 37, 40, 48, 54, 56, 60, 68, 74, 78, 84, 83, 86, 87, 87,
			38, 36, 39, 41, 49, 56, 58, 63, 71, 77, 81, 86, 88, 88, 90, 93,
			39, 37, 40, 42, 50, 58, 60, 65, 73, 79, 84, 90, 91, 92, 94, 93,
			44, 41, 42, 45, 53, 63, 66, 71, 79, 85, 90, 96, 94, 96, 96, 99,
			47, 44, 45, 47, 56, 66, 69, 75, 84, 90, 95, 99, 101, 98, 101, 99,
			49, 46, 47, 48, 57, 67, 71, 77, 86, 93, 97, 103, 103, 105, 102, 106,
			53, 49, 50, 51, 60, 71, 75, 82, 92, 99, 103, 111, 108, 107, 110, 107,
			58, 54, 54, 55, 63, 75, 79, 87, 98, 105, 110, 114, 114, 113, 111, 115,
			61, 56, 56, 57, 65, 77, 81, 89, 100, 107, 113, 118, 116, 117, 118, 116,
			65, 60, 59, 60, 68, 79, 84, 92, 105, 112, 118, 126, 124, 122, 121, 124,
			71, 65, 64, 65, 73, 84, 89, 97, 111, 119, 125, 130, 129, 129, 129, 125,
			76, 69, 68, 69, 76, 88, 92, 101, 115, 123, 130, 134, 134, 131, 132, 135,
			79, 72, 70, 71, 79, 90, 95, 104, 118, 127, 133, 143, 142, 141, 138, 136,
			82, 75, 73, 74, 81, 92, 97, 106, 121, 130, 136, 146, 145, 144, 144, 145,
			86, 78, 76, 77, 84, 95, 100, 109, 124, 133, 140, 147, 153, 151, 150, 146,
			89, 81, 79, 78, 87, 95, 99, 112, 124, 130, 145, 152, 156, 157, 156, 158,
			92, 84, 82, 80, 89, 95, 101, 116, 121, 132, 148, 151, 157, 163, 161, 159,
			95, 86, 85, 83, 92, 95, 105, 114, 120, 136, 143, 155, 163, 167, 171, 170,
			98, 89, 88, 85, 93, 95, 108, 113, 124, 136, 141, 160, 163, 169, 174, 171,
			101, 92, 91, 88, 94, 98, 110, 112, 128, 133, 146, 158, 166, 175, 179, 185,
			104, 95, 94, 91, 95, 101, 110, 115, 129, 132, 151, 154, 171, 175, 181, 186,
			107, 98, 97, 94, 96, 105, 110, 119, 128, 136, 149, 156, 173, 177, 188, 192,
			110, 101, 100, 97, 98, 108, 111, 123, 127, 141, 147, 161, 169, 183, 188, 193,
			114, 104, 104, 100, 100, 111, 111, 126, 127, 145, 145, 166, 166, 189, 190, 201,
		},
		{ // level 1, chroma
			32, 31, 31, 30, 31, 31, 31, 32, 32, 33, 33, 34, 35, 36, 39, 36,
			38, 39, 40, 43, 47, 38, 40, 41, 41, 44, 47, 47, 41, 42, 42, 43,
			45, 47, 48, 48, 49, 47, 46, 46, 47, 48, 49, 50, 53, 49, 47, 46,
			46, 46, 47, 48, 50, 53, 53, 48, 47, 46, 45, 46, 46, 48, 49, 53,
			54, 54, 49, 47, 45, 45, 45, 45, 47, 49, 53, 55, 55, 58, 50, 48,
			46, 46, 46, 46, 47, 50, 54, 55, 56, 59, 61, 51, 48, 47, 46, 47,
			46, 47, 50, 54, 55, 56, 60, 61, 62, 52, 50, 48, 47, 47, 47, 48,
			50, 54, 56, 57, 61, 63, 64, 66, 54, 52, 50, 49, 49, 48, 49, 52,
			55, 57, 58, 62, 64, 66, 68, 71, 55, 53, 51, 50, 50, 49, 50, 52,
			56, 58, 59, 63, 65, 66, 69, 72, 73, 57, 54, 52, 51, 51, 50, 51,
			53, 56, 58, 60, 63, 66, 67, 70, 73, 74, 76, 60, 57, 55, 54, 53,
			52, 53, 55, 58, 60, 61, 65, 68, 69, 72, 75, 77, 79, 82, 62, 59,
			57, 56, 55, 53, 54, 56, 59, 61, 63, 66, 69, 70, 74, 77, 78, 80,
			84, 86, 63, 60, 58, 57, 56, 54, 55, 57, 60, 62, 63, 67, 70, 71,
			75, 78, 79, 82, 85, 87, 89, 65, 61, 59, 58, 57, 55, 56, 58, 61,
			63, 64, 68, 71, 72, 75, 79, 80, 83, 86, 88, 90, 91, 66, 63, 60,
			59, 58, 56, 58, 59, 62, 64, 65, 69, 72, 73, 76, 80, 81, 84, 87,
			90, 91, 93, 94, 67, 64, 62, 61, 59, 58, 58, 60, 63, 64, 66, 69,
			71, 73, 77, 78, 81, 85, 86, 89, 93, 94, 95, 97, 68, 65, 63, 62,
			60, 59, 58, 61, 62, 64, 67, 68, 71, 74, 75, 79, 81, 83, 87, 89,
			91, 95, 96, 97, 99, 69, 66, 64, 63, 61, 61, 59, 61, 62, 65, 66,
			68, 72, 73, 76, 78, 80, 84, 85, 88, 91, 92, 97, 98, 98, 101, 70,
			67, 65, 63, 62, 62, 60, 61, 63, 65, 66, 69, 71, 73, 76, 77, 81,
			83, 85, 88, 90, 94, 95, 99, 100, 100, 103, 71, 67, 67, 64, 63, 63,
			61, 61, 64, 65, 67, 69, 71, 74, 75, 78, 80, 83, 85, 87, 91, 92,
			95, 97, 100, 102, 102, 105, 72, 68, 68, 65, 65, 64, 62, 62, 64, 65,
			68, 69, 72, 73, 76, 78, 80, 83, 84, 88, 89, 93, 95, 97, 100, 102,
			104, 104, 107, 73, 69, 69, 66, 66, 65, 64, 63, 64, 66, 68, 69, 72,
			73, 77, 77, 81, 82, 86, 87, 90, 92, 95, 97, 99, 103, 104, 106, 106,
			109, 74, 70, 70, 67, 67, 66, 65, 63, 64, 67, 68, 70, 72, 74, 76,
			78, 80, 82, 85, 87, 90, 91, 95, 96, 100, 101, 105, 106, 108, 108, 111,
			75, 71, 71, 68, 68, 66, 66, 64, 64, 68, 68, 71, 71, 75, 75, 79,
			79, 83, 84, 88, 89, 93, 93, 98, 98, 102, 103, 108, 108, 110, 110, 113,
			32, 31, 35, 38, 48, 49, 50, 52, 57, 61, 63, 67, 68, 69, 70, 71,
			31, 31, 37, 40, 47, 47, 48, 50, 54, 57, 60, 63, 64, 65, 66, 67,
			30, 32, 38, 40, 46, 45, 46, 48, 52, 55, 58, 61, 63, 64, 65, 67,
			31, 33, 38, 41, 46, 45, 46, 48, 52, 55, 57, 60, 61, 62, 63, 64,
			33, 36, 41, 44, 47, 46, 46, 47, 51, 54, 56, 59, 60, 61, 63, 64,
			37, 40, 45, 47, 47, 45, 46, 47, 50, 52, 54, 57, 59, 61, 62, 62,
			39, 41, 46, 47, 48, 47, 47, 48, 51, 54, 55, 57, 58, 59, 61, 62,
			42, 43, 46, 48, 50, 49, 50, 50, 53, 56, 57, 60, 60, 59, 60, 60,
			49, 46, 48, 49, 53, 53, 54, 54, 57, 59, 60, 63, 61, 62, 61, 61,
			48, 46, 47, 48, 53, 55, 55, 56, 58, 61, 62, 64, 64, 63, 63, 64,
			48, 46, 46, 48, 53, 56, 56, 57, 60, 62, 64, 66, 65, 65, 65, 64,
			49, 45, 45, 47, 53, 58, 59, 61, 64, 66, 67, 69, 67, 67, 66, 67,
			50, 46, 46, 48, 54, 59, 61, 63, 66, 68, 70, 71, 71, 68, 69, 67,
			51, 47, 47, 48, 54, 60, 61, 64, 68, 70, 71, 73, 72, 72, 70, 71,
			52, 48, 47, 48, 54, 61, 63, 66, 71, 73, 75, 77, 75, 73, 74, 71,
			54, 50, 49, 50, 55, 62, 65, 68, 73, 76, 78, 79, 78, 76, 74, 75,
			55, 51, 49, 50, 56, 63, 65, 69, 74, 77, 79, 81, 79, 78, 78, 75,
			57, 52, 50, 51, 56, 64, 66, 70, 76, 79, 82, 85, 83, 81, 79, 79,
			60, 54, 53, 53, 58, 65, 68, 72, 79, 82, 85, 87, 85, 84, 82, 80,
			62, 56, 54, 55, 60, 66, 69, 74, 81, 84, 87, 88, 87, 85, 84, 84,
			63, 57, 55, 56, 60, 67, 70, 75, 82, 86, 89, 92, 91, 89, 87, 84,
			64, 59, 56, 57, 61, 68, 71, 75, 83, 87, 90, 93, 92, 90, 89, 89,
			66, 60, 58, 58, 62, 69, 72, 76, 84, 88, 91, 94, 95, 93, 91, 89,
			67, 61, 59, 58, 63, 68, 71, 78, 83, 86, 93, 96, 96, 96, 94, 94,
			68, 62, 60, 59, 64, 67, 71, 79, 81, 86, 94, 95, 97, 98, 96, 94,
			69, 63, 61, 60, 65, 66, 72, 77, 80, 88, 91, 96, 99, 99, 100, 98,
			70, 64, 62, 60, 65, 66, 73, 76, 81, 87, 89, 97, 98, 100, 101, 99,
			71, 65, 64, 61, 65, 67, 73, 74, 82, 85, 90, 95, 99, 102, 103, 104,
			72, 65, 65, 62, 65, 68, 72, 75, 82, 83, 92, 93, 100, 102, 103, 104,
			73, 66, 66, 63, 65, 69, 72, 76, 81, 85, 90, 93, 100, 102, 105, 106,
			74, 67, 67, 64, 65, 70, 71, 77, 79, 86, 89, 94, 98, 103, 105, 106,
			75, 68, 68, 65, 65, 71, 71, 78, 78, 87, 87, 96, 96, 105, 105, 109,
		},
	},
	{
		{ // level 2, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 33, 32,
			32, 32, 32, 33, 34, 32, 32, 32, 32, 34, 34, 35, 34, 34, 33, 33,
			35, 36, 37, 39, 34, 34, 34, 34, 36, 36, 37, 41, 42, 36, 35, 34,
			34, 36, 37, 38, 42, 45, 48, 39, 38, 38, 37, 39, 40, 40, 45, 47,
			50, 54, 41, 39, 39, 38, 40, 40, 41, 46, 48, 51, 55, 56, 44, 42,
			41, 41, 42, 42, 42, 47, 50, 54, 58, 59, 63, 48, 46, 45, 44, 45,
			45, 45, 50, 53, 56, 61, 62, 66, 70, 49, 47, 46, 45, 46, 46, 46,
			51, 53, 57, 62, 63, 68, 71, 73, 54, 51, 50, 49, 50, 49, 49, 54,
			56, 60, 65, 67, 71, 76, 77, 82, 58, 55, 54, 53, 53, 53, 52, 57,
			59, 63, 68, 70, 74, 79, 81, 86, 90, 59, 57, 55, 54, 54, 54, 54,
			59, 61, 64, 69, 71, 75, 80, 82, 87, 91, 93, 65, 62, 60, 59, 59,
			58, 58, 63, 65, 68, 73, 75, 79, 85, 87, 92, 97, 99, 105, 69, 66,
			64, 63, 63, 62, 61, 66, 68, 71, 76, 78, 83, 88, 90, 96, 100, 102,
			109, 113, 71, 68, 66, 65, 64, 63, 63, 68, 70, 73, 78, 80, 84, 90,
			92, 97, 102, 104, 111, 115, 117, 80, 76, 73, 72, 71, 70, 69, 74, 76,
			79, 84, 86, 90, 96, 98, 104, 109, 111, 118, 123, 125, 134, 81, 77, 75,
			74, 73, 72, 71, 75, 77, 80, 85, 87, 91, 97, 99, 105, 110, 112, 120,
			125, 127, 136, 137, 83, 78, 76, 75, 74, 73, 72, 76, 78, 81, 86, 88,
			92, 98, 100, 106, 111, 113, 121, 126, 128, 137, 139, 140, 87, 83, 81, 79,
			78, 77, 75, 80, 82, 85, 90, 91, 96, 101, 103, 110, 114, 117, 125, 129,
			133, 142, 143, 145, 150, 90, 85, 83, 81, 80, 79, 78, 81, 83, 87, 89,
			93, 98, 100, 106, 110, 114, 121, 124, 130, 136, 138, 148, 149, 151, 156, 93,
			88, 86, 84, 83, 82, 80, 82, 85, 89, 90, 96, 98, 102, 107, 109, 118,
			120, 125, 131, 134, 143, 145, 153, 156, 157, 163, 95, 90, 89, 86, 85, 85,
			83, 83, 88, 89, 93, 97, 99, 105, 106, 113, 116, 122, 127, 130, 139, 140,
			148, 153, 159, 162, 164, 169, 98, 93, 92, 89, 88, 87, 86, 85, 89, 90,
			96, 97, 102, 105, 109, 114, 117, 124, 126, 134, 136, 144, 148, 154, 160, 166,
			169, 170, 176, 101, 96, 95, 91, 91, 90, 89, 87, 90, 93, 97, 99, 104,
			105, 112, 113, 121, 122, 130, 133, 139, 144, 150, 155, 160, 168, 172, 176, 177,
			184, 104, 99, 98, 94, 94, 92, 92, 90, 92, 96, 98, 102, 104, 109, 112,
			116, 121, 125, 130, 135, 141, 144, 152, 155, 163, 166, 177, 179, 184, 185, 191,
			107, 101, 101, 97, 97, 95, 95, 93, 93, 99, 99, 105, 105, 112, 112, 120,
			120, 129, 129, 139, 140, 149, 149, 161, 161, 172, 172, 185, 186, 191, 192, 199,
			32, 31, 32, 32, 36, 39, 44, 53, 58, 65, 79, 81, 88, 90, 93, 96,
			31, 32, 32, 32, 35, 38, 42, 51, 55, 62, 75, 77, 83, 86, 88, 91,
			31, 32, 32, 32, 35, 38, 41, 50, 54, 60, 73, 75, 81, 84, 88, 91,
			31, 32, 32, 33, 34, 37, 41, 49, 53, 59, 72, 74, 79, 82, 84, 87,
			32, 32, 33, 34, 36, 39, 42, 50, 53, 59, 71, 72, 78, 81, 84, 87,
			32, 32, 34, 34, 37, 40, 42, 49, 53, 58, 70, 71, 77, 80, 83, 85,
			32, 33, 34, 35, 38, 40, 42, 49, 52, 58, 69, 70, 76, 78, 82, 86,
			34, 34, 35, 37, 42, 45, 48, 54, 57, 63, 73, 75, 79, 79, 81, 83,
			34, 34, 36, 37, 44, 47, 50, 56, 59, 65, 75, 77, 81, 83, 84, 84,
			36, 34, 37, 38, 48, 51, 54, 60, 63, 68, 78, 80, 85, 85, 86, 89,
			39, 37, 39, 40, 50, 54, 58, 65, 68, 73, 84, 85, 88, 89, 90, 89,
			40, 38, 40, 41, 51, 55, 59, 67, 70, 75, 85, 87, 91, 92, 92, 95,
			44, 41, 42, 43, 53, 58, 63, 71, 74, 79, 90, 91, 97, 94, 97, 95,
			47, 44, 45, 46, 56, 61, 66, 75, 79, 85, 95, 97, 99, 101, 98, 102,
			49, 46, 46, 47, 57, 62, 67, 77, 81, 86, 97, 99, 104, 102, 105, 102,
			53, 49, 50, 50, 60, 65, 71, 82, 86, 92, 103, 105, 109, 108, 106, 110,
			57, 53, 53, 53, 63, 68, 74, 86, 90, 97, 108, 110, 111, 112, 113, 110,
			59, 54, 54, 54, 64, 69, 75, 87, 91, 98, 111, 112, 119, 117, 115, 118,
			65, 60, 59, 58, 68, 73, 79, 92, 97, 105, 118, 119, 123, 123, 122, 119,
			69, 63, 62, 62, 71, 76, 83, 96, 100, 109, 122, 124, 127, 125, 125, 128,
			71, 65, 64, 63, 73, 78, 84, 97, 102, 111, 125, 127, 135, 134, 131, 129,
			79, 72, 71, 70, 79, 84, 90, 104, 109, 118, 133, 135, 137, 136, 136, 137,
			81, 74, 72, 71, 80, 85, 91, 105, 110, 120, 135, 137, 145, 143, 141, 138,
			82, 75, 73, 72, 81, 86, 92, 106, 111, 121, 136, 139, 147, 148, 147, 149,
			87, 79, 77, 76, 85, 90, 96, 110, 114, 125, 140, 143, 148, 154, 151, 149,
			90, 82, 80, 78, 87, 89, 99, 108, 113, 129, 135, 146, 153, 157, 160, 159,
			92, 84, 83, 81, 88, 90, 102, 106, 117, 128, 133, 150, 153, 158, 163, 160,
			95, 87, 85, 83, 88, 92, 103, 105, 120, 125, 137, 148, 155, 164, 168, 173,
			98, 89, 88, 85, 89, 95, 103, 108, 121, 124, 141, 144, 160, 164, 169, 174,
			100, 92, 91, 88, 90, 98, 103, 111, 120, 127, 139, 146, 161, 165, 175, 179,
			103, 94, 94, 90, 92, 101, 103, 114, 119, 131, 137, 150, 158, 170, 175, 180,
			106, 97, 97, 93, 93, 104, 104, 118, 118, 135, 135, 154, 155, 175, 176, 187,
		},
		{ // level 2, chroma
			32, 31, 31, 30, 31, 31, 30, 31, 31, 32, 33, 34, 35, 35, 39, 35,
			36, 37, 37, 41, 43, 36, 38, 39, 40, 43, 45, 47, 41, 42, 42, 42,
			45, 46, 47, 48, 44, 44, 44, 44, 46, 46, 47, 49, 50, 49, 47, 47,
			46, 47, 47, 48, 50, 51, 53, 48, 47, 46, 45, 46, 46, 46, 49, 51,
			53, 54, 48, 47, 46, 45, 46, 46, 46, 49, 51, 53, 54, 55, 49, 47,
			46, 45, 45, 45, 45, 49, 51, 53, 55, 56, 58, 50, 48, 47, 46, 46,
			46, 46, 50, 51, 54, 56, 57, 59, 61, 51, 48, 47, 46, 47, 46, 46,
			50, 51, 54, 56, 57, 60, 62, 62, 52, 50, 48, 47, 47, 47, 47, 50,
			52, 54, 57, 58, 61, 63, 64, 66, 54, 51, 50, 49, 49, 48, 48, 51,
			53, 55, 58, 59, 62, 64, 65, 68, 70, 55, 52, 51, 50, 49, 49, 48,
			52, 53, 55, 59, 60, 62, 65, 66, 68, 70, 71, 57, 54, 53, 52, 51,
			50, 50, 53, 54, 56, 60, 61, 63, 66, 67, 70, 73, 73, 76, 59, 56,
			54, 53, 53, 52, 51, 54, 56, 58, 61, 62, 65, 68, 69, 72, 74, 75,
			78, 80, 60, 57, 55, 54, 53, 53, 52, 55, 56, 58, 61, 63, 65, 68,
			69, 72, 75, 76, 79, 81, 82, 63, 60, 58, 57, 56, 55, 54, 57, 59,
			60, 63, 65, 67, 70, 71, 75, 77, 78, 82, 84, 85, 89, 64, 61, 59,
			58, 57, 56, 55, 58, 59, 61, 64, 65, 68, 71, 72, 75, 78, 79, 82,
			85, 86, 89, 90, 65, 61, 60, 58, 57, 56, 55, 58, 59, 61, 64, 65,
			68, 71, 72, 75, 78, 79, 83, 85, 86, 90, 91, 91, 67, 63, 61, 60,
			59, 58, 57, 60, 61, 63, 65, 66, 69, 72, 73, 77, 79, 80, 84, 86,
			88, 92, 93, 93, 95, 68, 64, 63, 61, 60, 59, 58, 60, 61, 63, 65,
			67, 70, 71, 74, 76, 78, 81, 83, 86, 88, 89, 94, 94, 95, 97, 68,
			65, 64, 62, 61, 60, 58, 59, 61, 64, 64, 68, 69, 71, 74, 75, 79,
			80, 83, 86, 87, 91, 92, 95, 96, 97, 99, 69, 66, 65, 63, 62, 61,
			59, 59, 62, 63, 65, 67, 69, 72, 72, 76, 78, 80, 83, 84, 88, 89,
			92, 94, 97, 98, 99, 101, 70, 67, 66, 63, 63, 62, 61, 60, 63, 63,
			66, 67, 69, 71, 73, 76, 77, 81, 82, 85, 86, 90, 91, 94, 96, 99,
			100, 100, 103, 71, 67, 67, 64, 64, 63, 62, 61, 62, 64, 66, 67, 70,
			71, 74, 74, 78, 79, 83, 84, 87, 89, 91, 94, 95, 99, 100, 102, 102,
			104, 72, 68, 68, 65, 65, 64, 63, 61, 62, 65, 66, 68, 69, 71, 73,
			75, 77, 79, 82, 84, 87, 88, 92, 93, 96, 97, 101, 102, 104, 104, 106,
			73, 69, 69, 66, 66, 64, 64, 62, 62, 66, 66, 69, 69, 72, 73, 76,
			77, 81, 81, 85, 85, 89, 90, 94, 94, 99, 99, 104, 104, 106, 106, 108,
			32, 31, 34, 37, 48, 48, 49, 52, 54, 57, 63, 64, 67, 68, 69, 69,
			31, 31, 35, 38, 47, 47, 47, 50, 51, 54, 60, 61, 63, 64, 65, 66,
			31, 32, 36, 39, 46, 46, 46, 48, 50, 53, 58, 59, 62, 63, 65, 66,
			30, 32, 36, 40, 46, 45, 45, 48, 49, 52, 57, 58, 60, 61, 62, 63,
			33, 36, 40, 43, 47, 46, 46, 47, 49, 51, 56, 57, 59, 60, 62, 63,
			35, 38, 42, 45, 47, 46, 45, 47, 48, 50, 55, 56, 58, 60, 61, 61,
			37, 40, 44, 47, 47, 46, 45, 47, 48, 50, 54, 55, 57, 58, 60, 61,
			42, 43, 45, 47, 50, 50, 49, 50, 51, 53, 57, 58, 59, 58, 59, 59,
			44, 44, 46, 47, 51, 51, 51, 52, 53, 54, 59, 59, 60, 61, 61, 60,
			49, 46, 47, 48, 53, 53, 53, 54, 55, 57, 60, 61, 63, 62, 62, 63,
			48, 46, 46, 47, 53, 54, 56, 57, 58, 60, 64, 64, 64, 64, 64, 63,
			48, 45, 46, 46, 53, 55, 56, 58, 59, 61, 65, 65, 66, 66, 65, 66,
			49, 45, 45, 46, 53, 56, 58, 61, 62, 64, 67, 68, 70, 67, 68, 66,
			50, 46, 46, 46, 54, 56, 59, 63, 65, 66, 70, 71, 70, 71, 68, 70,
			51, 47, 47, 47, 54, 57, 60, 64, 65, 68, 71, 72, 73, 71, 72, 70,
			52, 48, 47, 47, 54, 57, 61, 66, 68, 71, 75, 75, 76, 75, 73, 73,
			54, 49, 49, 48, 55, 58, 62, 68, 70, 73, 77, 78, 77, 77, 76, 74,
			54, 50, 49, 49, 55, 59, 62, 68, 70, 74, 78, 79, 81, 79, 77, 78,
			57, 52, 51, 50, 56, 60, 64, 70, 73, 76, 82, 82, 83, 82, 81, 78,
			59, 54, 52, 52, 58, 61, 65, 72, 74, 78, 84, 85, 85, 83, 82, 82,
			60, 54, 53, 52, 58, 62, 65, 72, 75, 79, 85, 86, 89, 87, 85, 82,
			63, 57, 56, 55, 60, 64, 67, 75, 77, 82, 89, 90, 90, 88, 87, 86,
			64, 58, 57, 55, 61, 64, 68, 75, 78, 82, 89, 90, 93, 91, 89, 87,
			64, 59, 57, 56, 61, 65, 68, 75, 78, 83, 90, 91, 94, 93, 92, 91,
			66, 60, 59, 57, 63, 66, 69, 77, 79, 84, 91, 93, 94, 95, 93, 91,
			67, 61, 60, 58, 63, 65, 70, 75, 78, 85, 88, 93, 96, 97, 97, 95,
			68, 62, 61, 59, 63, 64, 71, 74, 79, 84, 87, 94, 96, 97, 98, 96,
			69, 63, 62, 60, 63, 65, 71, 72, 80, 82, 88, 93, 96, 99, 100, 101,
			70, 64, 63, 60, 63, 66, 70, 73, 80, 81, 89, 90, 97, 99, 100, 101,
			71, 65, 64, 61, 63, 67, 70, 74, 78, 82, 88, 90, 97, 99, 102, 103,
			72, 65, 65, 62, 63, 68, 69, 75, 77, 83, 86, 92, 95, 100, 102, 103,
			73, 66, 66, 63, 63, 69, 69, 76, 76, 84, 84, 93, 93, 101, 101, 105,
		},
	},
	{
		{ // level 3, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 33, 31,
			32, 32, 32, 33, 33, 32, 32, 32, 32, 33, 34, 35, 32, 33, 33, 33,
			34, 34, 36, 36, 34, 34, 34, 33, 35, 35, 37, 38, 39, 35, 35, 34,
			34, 36, 36, 38, 39, 42, 46, 36, 35, 35, 34, 36, 36, 38, 40, 42,
			47, 48, 39, 38, 38, 37, 39, 39, 40, 42, 45, 49, 50, 54, 41, 40,
			39, 38, 40, 40, 41, 43, 46, 50, 52, 55, 57, 44, 42, 42, 41, 42,
			42, 42, 44, 47, 52, 54, 58, 60, 63, 47, 45, 45, 44, 44, 45, 45,
			47, 50, 55, 56, 60, 62, 66, 69, 48, 46, 45, 44, 45, 45, 46, 47,
			51, 55, 57, 61, 63, 67, 70, 71, 54, 51, 50, 49, 49, 50, 49, 51,
			54, 59, 60, 65, 67, 71, 75, 76, 82, 56, 53, 52, 51, 51, 51, 51,
			53, 56, 60, 61, 66, 69, 73, 77, 78, 84, 86, 59, 56, 55, 54, 54,
			54, 53, 55, 58, 62, 64, 69, 71, 75, 79, 80, 87, 89, 92, 64, 61,
			60, 58, 58, 58, 57, 59, 62, 66, 67, 72, 75, 79, 83, 84, 91, 93,
			97, 102, 65, 62, 61, 59, 59, 59, 58, 60, 63, 67, 68, 73, 75, 79,
			84, 85, 92, 94, 98, 103, 105, 71, 68, 67, 65, 64, 64, 63, 65, 68,
			72, 73, 78, 80, 84, 89, 90, 97, 100, 103, 109, 111, 117, 74, 71, 69,
			68, 67, 67, 65, 67, 70, 74, 75, 80, 83, 86, 91, 93, 100, 102, 106,
			112, 114, 120, 123, 80, 76, 74, 72, 71, 71, 69, 71, 74, 78, 79, 84,
			86, 90, 95, 96, 104, 106, 110, 116, 118, 125, 128, 134, 82, 78, 76, 74,
			73, 73, 71, 73, 76, 79, 80, 86, 88, 92, 97, 98, 106, 108, 112, 118,
			120, 127, 131, 136, 139, 83, 78, 77, 75, 74, 74, 72, 73, 76, 80, 81,
			86, 89, 92, 97, 99, 106, 109, 113, 119, 121, 128, 131, 137, 139, 140, 87,
			83, 81, 79, 78, 78, 75, 77, 80, 83, 85, 90, 92, 96, 100, 102, 110,
			112, 117, 122, 125, 133, 135, 142, 144, 145, 150, 90, 85, 84, 81, 80, 80,
			78, 78, 82, 84, 87, 91, 93, 98, 99, 106, 108, 113, 118, 121, 129, 130,
			137, 141, 147, 150, 151, 156, 92, 88, 87, 84, 83, 82, 80, 80, 84, 85,
			90, 91, 95, 98, 102, 106, 109, 115, 117, 125, 126, 134, 137, 142, 148, 152,
			155, 156, 162, 95, 90, 89, 86, 85, 84, 83, 82, 85, 87, 91, 92, 97,
			98, 105, 105, 112, 114, 121, 123, 129, 133, 138, 143, 147, 155, 158, 161, 162,
			168, 97, 92, 92, 88, 88, 86, 86, 84, 85, 90, 91, 95, 97, 101, 104,
			108, 112, 116, 121, 125, 130, 133, 140, 143, 150, 152, 162, 164, 168, 168, 174,
			100, 95, 95, 90, 90, 89, 89, 86, 86, 92, 92, 97, 98, 104, 104, 111,
			111, 119, 119, 128, 129, 137, 137, 147, 148, 157, 158, 169, 170, 174, 175, 181,
			32, 31, 31, 32, 35, 36, 44, 47, 53, 62, 65, 79, 82, 88, 90, 93,
			31, 32, 32, 32, 35, 35, 42, 45, 51, 59, 62, 75, 78, 83, 86, 88,
			31, 32, 32, 32, 34, 35, 41, 45, 50, 58, 61, 74, 76, 82, 85, 88,
			31, 32, 32, 33, 34, 34, 41, 44, 49, 57, 59, 72, 74, 79, 82, 84,
			31, 32, 33, 34, 35, 36, 42, 44, 49, 57, 59, 71, 73, 79, 81, 84,
			32, 32, 33, 34, 36, 36, 42, 45, 50, 57, 59, 71, 73, 78, 80, 82,
			32, 33, 34, 35, 37, 38, 42, 45, 49, 56, 58, 69, 71, 76, 79, 83,
			32, 33, 34, 36, 39, 40, 44, 47, 51, 58, 60, 71, 73, 76, 78, 80,
			34, 34, 35, 37, 41, 42, 48, 50, 54, 61, 63, 73, 76, 81, 81, 80,
			35, 34, 36, 38, 45, 47, 52, 55, 59, 65, 67, 77, 79, 82, 83, 86,
			36, 34, 36, 38, 46, 48, 54, 56, 60, 66, 68, 78, 80, 85, 87, 86,
			39, 37, 39, 40, 48, 50, 58, 60, 65, 71, 73, 84, 86, 89, 88, 91,
			41, 39, 40, 41, 49, 51, 60, 62, 67, 74, 76, 86, 88, 91, 93, 91,
			44, 41, 42, 43, 51, 53, 63, 66, 71, 78, 79, 90, 92, 97, 94, 97,
			47, 44, 44, 45, 53, 56, 66, 69, 75, 82, 84, 95, 97, 98, 101, 98,
			48, 45, 45, 46, 54, 56, 67, 70, 76, 83, 85, 96, 98, 104, 101, 105,
			53, 49, 50, 50, 57, 60, 71, 75, 82, 90, 92, 103, 106, 107, 108, 105,
			55, 51, 51, 51, 59, 61, 72, 77, 84, 92, 94, 106, 108, 111, 110, 112,
			58, 54, 54, 54, 61, 63, 75, 79, 87, 95, 98, 110, 112, 117, 116, 113,
			63, 58, 58, 57, 65, 67, 78, 83, 91, 100, 103, 116, 118, 119, 119, 121,
			65, 60, 59, 58, 66, 68, 79, 84, 92, 102, 105, 118, 120, 127, 124, 122,
			71, 65, 64, 63, 71, 73, 84, 89, 97, 108, 111, 125, 127, 129, 129, 130,
			74, 68, 67, 66, 73, 75, 86, 91, 100, 110, 113, 128, 131, 135, 134, 130,
			79, 72, 71, 70, 77, 79, 90, 95, 104, 115, 118, 133, 136, 140, 139, 140,
			82, 75, 73, 72, 79, 81, 92, 97, 105, 117, 120, 136, 139, 145, 142, 140,
			82, 75, 74, 72, 79, 81, 92, 97, 106, 117, 121, 136, 139, 148, 150, 149,
			87, 79, 78, 76, 83, 85, 96, 100, 110, 120, 125, 141, 144, 148, 153, 150,
			89, 82, 81, 78, 83, 87, 97, 99, 113, 118, 128, 139, 145, 153, 157, 161,
			92, 84, 83, 80, 84, 89, 97, 101, 114, 116, 132, 135, 150, 153, 157, 162,
			94, 86, 85, 82, 85, 92, 97, 104, 112, 119, 130, 136, 151, 154, 163, 166,
			97, 88, 88, 85, 86, 94, 97, 107, 111, 123, 128, 140, 147, 159, 163, 167,
			99, 91, 91, 87, 87, 97, 97, 110, 110, 126, 126, 144, 144, 163, 163, 173,
		},
		{ // level 3, chroma
			32, 31, 31, 31, 31, 31, 30, 31, 31, 32, 33, 34, 34, 34, 37, 33,
			34, 35, 35, 38, 39, 36, 38, 39, 40, 42, 43, 47, 38, 40, 40, 41,
			43, 44, 47, 47, 41, 42, 42, 42, 44, 45, 47, 48, 48, 47, 46, 46,
			45, 46, 47, 47, 48, 50, 52, 49, 47, 47, 46, 47, 47, 48, 49, 50,
			52, 53, 48, 47, 46, 45, 46, 46, 46, 48, 49, 52, 53, 54, 49, 47,
			46, 45, 46, 46, 46, 47, 49, 52, 53, 55, 55, 49, 47, 46, 45, 45,
			45, 45, 47, 49, 52, 53, 55, 57, 58, 50, 48, 47, 46, 46, 46, 46,
			47, 50, 53, 54, 56, 57, 59, 61, 50, 48, 47, 46, 46, 46, 46, 47,
			50, 53, 54, 56, 58, 60, 61, 61, 52, 50, 49, 47, 47, 47, 47, 48,
			50, 53, 54, 57, 59, 61, 63, 63, 66, 53, 50, 50, 48, 48, 48, 47,
			49, 51, 54, 55, 58, 59, 62, 64, 64, 67, 68, 54, 52, 51, 49, 49,
			49, 48, 49, 52, 55, 55, 58, 60, 62, 64, 65, 68, 69, 71, 56, 54,
			53, 51, 51, 51, 49, 51, 53, 55, 56, 59, 61, 63, 66, 66, 70, 71,
			73, 75, 57, 54, 53, 52, 51, 51, 50, 51, 53, 56, 56, 60, 61, 63,
			66, 67, 70, 71, 73, 76, 76, 60, 57, 56, 54, 53, 53, 52, 53, 55,
			58, 58, 61, 63, 65, 68, 68, 72, 73, 75, 78, 79, 82, 61, 58, 57,
			55, 55, 54, 53, 54, 56, 58, 59, 62, 64, 66, 69, 69, 73, 74, 76,
			79, 80, 83, 84, 63, 60, 59, 57, 56, 56, 54, 55, 57, 60, 60, 63,
			65, 67, 70, 71, 75, 76, 78, 81, 82, 85, 86, 89, 64, 61, 60, 58,
			57, 57, 55, 56, 58, 60, 61, 64, 66, 68, 70, 71, 75, 77, 79, 82,
			82, 86, 87, 90, 91, 65, 61, 60, 58, 57, 57, 55, 56, 58, 61, 61,
			64, 66, 68, 71, 71, 75, 77, 79, 82, 83, 86, 88, 90, 91, 91, 67,
			63, 62, 60, 59, 59, 57, 58, 60, 62, 63, 66, 67, 69, 72, 73, 77,
			78, 80, 83, 84, 88, 89, 92, 93, 93, 95, 67, 64, 63, 61, 60, 60,
			58, 58, 61, 61, 63, 65, 67, 70, 70, 74, 75, 78, 80, 81, 85, 86,
			89, 91, 93, 94, 95, 97, 68, 65, 64, 62, 61, 60, 59, 58, 61, 61,
			64, 65, 67, 69, 71, 73, 75, 78, 79, 83, 83, 87, 88, 91, 93, 95,
			96, 97, 99, 69, 65, 65, 62, 62, 61, 60, 59, 61, 62, 64, 65, 68,
			68, 72, 72, 76, 76, 80, 81, 84, 86, 88, 90, 92, 95, 96, 98, 98,
			100, 70, 66, 66, 63, 63, 62, 61, 60, 60, 63, 64, 66, 67, 69, 71,
			73, 75, 77, 79, 81, 84, 85, 88, 89, 93, 93, 97, 98, 100, 100, 102,
			71, 67, 67, 64, 64, 62, 62, 60, 60, 64, 64, 67, 67, 70, 70, 74,
			74, 78, 78, 82, 82, 86, 86, 91, 91, 95, 95, 100, 100, 101, 101, 104,
			32, 31, 33, 37, 45, 48, 49, 50, 52, 56, 57, 63, 64, 67, 68, 68,
			31, 31, 34, 38, 45, 47, 47, 48, 50, 53, 54, 60, 61, 63, 64, 65,
			31, 32, 34, 39, 45, 46, 46, 47, 49, 52, 53, 59, 60, 62, 64, 65,
			30, 32, 35, 40, 44, 46, 45, 46, 48, 51, 52, 57, 58, 60, 61, 62,
			33, 35, 37, 42, 46, 47, 45, 46, 47, 50, 51, 56, 57, 60, 61, 62,
			33, 36, 38, 43, 46, 47, 46, 46, 47, 50, 51, 56, 57, 59, 60, 60,
			37, 40, 43, 47, 47, 47, 45, 46, 47, 49, 50, 54, 55, 57, 59, 61,
			39, 41, 43, 47, 48, 48, 47, 47, 48, 50, 51, 55, 56, 57, 58, 59,
			42, 43, 44, 47, 49, 50, 49, 50, 50, 53, 53, 57, 58, 60, 60, 59,
			47, 46, 46, 48, 51, 52, 53, 53, 53, 55, 56, 60, 61, 61, 61, 62,
			49, 46, 47, 48, 52, 53, 53, 54, 54, 56, 57, 60, 61, 63, 63, 62,
			48, 46, 46, 47, 51, 53, 56, 56, 57, 59, 60, 64, 64, 65, 64, 65,
			48, 45, 46, 46, 51, 53, 57, 57, 59, 61, 61, 65, 66, 66, 67, 65,
			49, 45, 45, 46, 51, 53, 58, 59, 61, 63, 64, 67, 68, 70, 67, 68,
			50, 46, 46, 46, 52, 54, 59, 61, 63, 65, 66, 70, 71, 70, 71, 68,
			50, 46, 46, 46, 52, 54, 59, 61, 64, 66, 67, 71, 71, 73, 71, 72,
			52, 48, 47, 47, 53, 54, 61, 63, 66, 70, 71, 75, 75, 75, 74, 72,
			53, 49, 48, 48, 53, 55, 61, 64, 67, 71, 72, 76, 77, 77, 75, 76,
			54, 50, 49, 49, 54, 55, 62, 65, 68, 72, 73, 78, 79, 80, 79, 76,
			56, 51, 51, 50, 55, 56, 63, 66, 70, 74, 76, 81, 82, 81, 80, 80,
			57, 52, 51, 50, 55, 56, 64, 66, 70, 75, 76, 82, 83, 85, 83, 80,
			60, 54, 54, 52, 57, 58, 65, 68, 72, 77, 79, 85, 86, 86, 85, 84,
			61, 56, 55, 53, 58, 59, 66, 69, 73, 79, 80, 86, 87, 89, 87, 84,
			63, 57, 56, 55, 59, 60, 67, 70, 75, 80, 82, 89, 90, 91, 89, 89,
			64, 58, 57, 56, 60, 61, 68, 71, 75, 81, 83, 90, 91, 93, 91, 89,
			64, 59, 58, 56, 60, 61, 68, 71, 75, 81, 83, 90, 91, 94, 94, 93,
			66, 60, 59, 57, 61, 63, 69, 72, 77, 82, 84, 92, 93, 94, 95, 93,
			67, 61, 60, 58, 61, 63, 69, 70, 78, 80, 85, 90, 93, 96, 97, 97,
			68, 62, 61, 59, 61, 64, 68, 71, 77, 79, 86, 88, 94, 96, 97, 98,
			69, 63, 62, 59, 61, 65, 68, 72, 76, 80, 85, 88, 94, 95, 99, 99,
			70, 63, 63, 60, 61, 66, 67, 73, 75, 81, 83, 89, 92, 97, 98, 99,
			70, 64, 64, 61, 61, 67, 67, 74, 74, 82, 82, 90, 90, 98, 98, 102,
		},
	},
	{
		{ // level 4, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 32, 31,
			32, 32, 32, 33, 33, 32, 32, 32, 32, 33, 33, 34, 32, 32, 32, 32,
			33, 34, 35, 35, 33, 33, 33, 33, 34, 35, 36, 36, 38, 34, 34, 34,
			33, 34, 35, 36, 37, 39, 39, 36, 35, 35, 34, 35, 36, 37, 38, 42,
			42, 48, 36, 35, 35, 34, 35, 36, 38, 38, 42, 43, 48, 49, 39, 38,
			38, 37, 38, 39, 40, 40, 44, 45, 50, 51, 54, 41, 39, 39, 38, 39,
			40, 40, 41, 45, 46, 51, 52, 55, 56, 44, 42, 42, 41, 41, 42, 42,
			42, 46, 47, 54, 54, 58, 59, 63, 46, 44, 44, 42, 43, 44, 44, 44,
			48, 49, 55, 55, 59, 61, 65, 67, 48, 46, 46, 44, 45, 45, 45, 46,
			50, 51, 57, 57, 61, 63, 67, 69, 71, 52, 50, 49, 48, 48, 48, 48,
			48, 52, 53, 59, 59, 64, 65, 70, 72, 74, 78, 54, 51, 51, 49, 49,
			50, 49, 49, 53, 54, 60, 60, 65, 67, 71, 74, 76, 80, 82, 58, 56,
			55, 53, 53, 53, 53, 53, 57, 58, 63, 64, 68, 70, 75, 77, 80, 84,
			86, 91, 59, 56, 56, 54, 54, 54, 53, 53, 57, 58, 64, 64, 69, 70,
			75, 78, 80, 85, 87, 91, 92, 65, 62, 61, 59, 59, 59, 58, 58, 62,
			63, 68, 68, 73, 75, 79, 82, 85, 90, 92, 97, 98, 105, 66, 63, 63,
			60, 60, 60, 59, 59, 63, 64, 69, 69, 74, 76, 80, 83, 86, 91, 93,
			98, 99, 106, 107, 71, 68, 67, 65, 65, 64, 63, 63, 67, 68, 73, 73,
			78, 80, 84, 87, 90, 95, 97, 103, 103, 111, 112, 117, 74, 71, 70, 68,
			67, 67, 66, 65, 69, 70, 75, 75, 80, 82, 86, 89, 93, 97, 100, 105,
			106, 114, 115, 120, 123, 80, 76, 75, 72, 72, 71, 70, 69, 73, 74, 79,
			79, 84, 86, 90, 93, 96, 101, 104, 110, 110, 118, 119, 125, 128, 134, 81,
			77, 77, 74, 73, 73, 71, 71, 74, 75, 80, 80, 85, 87, 91, 94, 98,
			103, 105, 111, 112, 120, 121, 127, 130, 136, 137, 83, 78, 78, 75, 74, 74,
			72, 72, 75, 76, 81, 81, 86, 88, 92, 95, 99, 104, 106, 112, 113, 121,
			122, 128, 131, 137, 139, 140, 86, 82, 81, 78, 77, 77, 75, 74, 78, 79,
			84, 84, 89, 91, 95, 98, 101, 106, 109, 115, 116, 124, 125, 131, 135, 140,
			142, 144, 147, 89, 84, 84, 80, 80, 79, 78, 77, 79, 81, 85, 86, 91,
			92, 97, 98, 104, 106, 112, 114, 119, 123, 128, 132, 135, 142, 145, 148, 149,
			153, 91, 86, 86, 82, 82, 81, 80, 79, 80, 84, 85, 88, 91, 94, 97,
			100, 104, 107, 112, 115, 120, 123, 129, 132, 138, 140, 148, 150, 153, 154, 159,
			93, 88, 88, 84, 84, 83, 83, 80, 81, 86, 86, 91, 91, 96, 97, 103,
			103, 110, 110, 118, 119, 126, 126, 135, 136, 144, 144, 155, 155, 159, 159, 164,
			32, 31, 31, 32, 33, 36, 40, 44, 51, 53, 65, 66, 79, 81, 87, 90,
			31, 32, 32, 32, 33, 35, 39, 42, 49, 51, 62, 63, 75, 77, 83, 85,
			31, 32, 32, 32, 33, 35, 39, 42, 49, 51, 61, 62, 74, 76, 82, 85,
			31, 32, 32, 33, 33, 34, 38, 41, 47, 49, 59, 60, 72, 74, 79, 81,
			31, 32, 32, 33, 34, 35, 38, 41, 47, 49, 59, 60, 71, 73, 79, 81,
			32, 32, 33, 34, 35, 36, 39, 42, 48, 50, 59, 60, 71, 72, 78, 80,
			32, 32, 33, 35, 36, 37, 40, 42, 48, 49, 58, 59, 69, 71, 77, 80,
			32, 33, 33, 35, 36, 38, 41, 42, 48, 49, 58, 59, 69, 70, 75, 77,
			33, 33, 34, 36, 38, 41, 44, 46, 52, 53, 62, 63, 72, 74, 78, 78,
			34, 34, 34, 37, 39, 42, 45, 48, 53, 54, 63, 64, 73, 75, 80, 83,
			36, 34, 35, 38, 42, 48, 51, 54, 58, 60, 68, 69, 78, 80, 84, 83,
			36, 35, 35, 38, 42, 48, 51, 54, 59, 60, 68, 69, 79, 80, 85, 87,
			39, 37, 38, 40, 44, 50, 54, 58, 63, 65, 73, 74, 84, 85, 89, 88,
			40, 38, 39, 41, 45, 51, 56, 59, 65, 67, 75, 76, 85, 87, 90, 93,
			44, 41, 41, 43, 46, 53, 59, 63, 69, 71, 79, 80, 90, 91, 96, 93,
			46, 43, 43, 44, 48, 55, 60, 65, 72, 73, 82, 83, 93, 94, 97, 100,
			48, 45, 45, 46, 50, 56, 62, 67, 74, 76, 85, 86, 96, 98, 103, 100,
			52, 48, 48, 49, 52, 59, 65, 70, 78, 80, 90, 91, 101, 103, 105, 107,
			53, 49, 49, 50, 53, 60, 66, 71, 79, 82, 92, 93, 103, 105, 111, 107,
			58, 53, 53, 53, 57, 63, 69, 74, 83, 86, 97, 98, 109, 111, 113, 115,
			58, 54, 54, 54, 57, 63, 70, 75, 84, 87, 98, 99, 110, 112, 118, 115,
			65, 60, 59, 58, 62, 68, 74, 79, 89, 92, 105, 106, 118, 119, 122, 123,
			66, 61, 60, 59, 63, 69, 75, 80, 90, 93, 106, 107, 119, 121, 126, 123,
			71, 65, 65, 63, 67, 73, 79, 84, 94, 97, 111, 112, 125, 127, 131, 132,
			74, 68, 67, 66, 69, 75, 81, 86, 97, 100, 113, 115, 128, 130, 134, 132,
			79, 72, 72, 70, 73, 79, 85, 90, 101, 104, 118, 119, 133, 135, 141, 140,
			81, 74, 73, 71, 75, 80, 86, 91, 102, 105, 120, 121, 135, 137, 143, 140,
			82, 75, 74, 72, 75, 81, 87, 92, 103, 106, 121, 122, 136, 139, 147, 151,
			86, 78, 78, 75, 78, 84, 90, 95, 106, 109, 124, 125, 140, 142, 147, 151,
			88, 81, 80, 77, 80, 86, 90, 98, 105, 112, 122, 127, 140, 144, 152, 155,
			91, 83, 82, 79, 80, 88, 90, 100, 103, 114, 119, 130, 137, 148, 151, 155,
			93, 85, 85, 81, 81, 90, 90, 102, 103, 117, 117, 134, 134, 151, 152, 160,
		},
		{ // level 4, chroma
			32, 31, 31, 31, 31, 31, 30, 31, 31, 32, 31, 32, 32, 33, 34, 33,
			34, 35, 35, 37, 39, 35, 37, 37, 38, 39, 41, 44, 36, 38, 39, 40,
			41, 43, 46, 47, 40, 41, 41, 42, 43, 44, 46, 47, 48, 41, 42, 42,
			42, 43, 45, 46, 47, 48, 48, 49, 47, 47, 46, 46, 47, 47, 48, 50,
			50, 53, 49, 47, 47, 46, 46, 47, 47, 47, 49, 50, 53, 53, 48, 47,
			47, 45, 46, 46, 46, 46, 49, 49, 53, 53, 54, 48, 47, 46, 45, 45,
			46, 46, 46, 49, 49, 53, 53, 54, 55, 49, 47, 46, 45, 45, 45, 45,
			45, 48, 49, 53, 54, 55, 56, 58, 50, 47, 47, 45, 46, 46, 46, 46,
			49, 49, 54, 54, 56, 57, 59, 60, 50, 48, 48, 46, 46, 46, 46, 46,
			49, 50, 54, 54, 56, 57, 60, 60, 61, 52, 49, 49, 47, 47, 47, 47,
			46, 49, 50, 54, 54, 57, 58, 61, 62, 63, 65, 52, 50, 49, 47, 47,
			47, 47, 47, 49, 50, 54, 54, 57, 58, 61, 62, 63, 65, 66, 54, 52,
			51, 49, 49, 49, 48, 48, 51, 52, 55, 55, 58, 59, 62, 63, 65, 67,
			68, 70, 54, 52, 51, 49, 49, 49, 48, 48, 51, 52, 55, 56, 58, 60,
			62, 64, 65, 67, 68, 70, 71, 57, 54, 54, 52, 51, 51, 50, 50, 52,
			53, 56, 57, 60, 61, 63, 65, 67, 69, 70, 73, 73, 76, 57, 55, 54,
			52, 52, 51, 51, 50, 53, 53, 57, 57, 60, 61, 64, 65, 67, 70, 71,
			73, 74, 77, 77, 60, 57, 56, 54, 54, 53, 52, 52, 54, 55, 58, 59,
			61, 63, 65, 67, 68, 71, 72, 75, 75, 79, 79, 82, 61, 58, 57, 55,
			55, 54, 53, 53, 55, 56, 59, 59, 62, 63, 66, 68, 69, 72, 73, 76,
			76, 80, 80, 83, 84, 63, 60, 59, 57, 57, 56, 55, 54, 57, 57, 60,
			61, 63, 65, 67, 69, 71, 73, 75, 78, 78, 82, 82, 85, 86, 89, 64,
			61, 60, 58, 57, 57, 56, 55, 57, 58, 61, 61, 64, 65, 68, 69, 71,
			74, 75, 78, 78, 82, 83, 86, 87, 89, 90, 65, 61, 61, 58, 58, 57,
			56, 55, 58, 58, 61, 62, 64, 65, 68, 70, 71, 74, 75, 78, 79, 83,
			83, 86, 88, 90, 91, 91, 66, 63, 62, 60, 59, 58, 57, 56, 59, 59,
			62, 63, 65, 66, 69, 70, 72, 75, 76, 79, 80, 84, 84, 87, 89, 91,
			92, 93, 94, 67, 64, 63, 61, 60, 59, 58, 57, 59, 60, 62, 63, 66,
			66, 70, 70, 73, 74, 77, 78, 81, 83, 85, 87, 89, 92, 93, 94, 94,
			96, 68, 64, 64, 61, 61, 60, 59, 58, 59, 61, 62, 64, 65, 67, 69,
			71, 72, 74, 77, 78, 81, 82, 85, 86, 89, 90, 94, 94, 96, 96, 98,
			69, 65, 65, 62, 62, 61, 61, 58, 59, 62, 62, 65, 65, 68, 68, 71,
			71, 75, 75, 79, 79, 83, 83, 87, 87, 91, 91, 96, 96, 97, 97, 99,
			32, 31, 32, 37, 40, 48, 49, 49, 51, 52, 57, 58, 63, 64, 67, 67,
			31, 31, 33, 38, 41, 47, 47, 47, 49, 50, 54, 55, 60, 61, 63, 64,
			31, 31, 33, 38, 41, 47, 47, 47, 49, 49, 54, 54, 59, 60, 63, 64,
			30, 32, 33, 40, 42, 46, 45, 45, 47, 48, 52, 52, 57, 58, 60, 61,
			31, 33, 35, 41, 43, 46, 46, 45, 47, 48, 51, 52, 57, 57, 60, 61,
			33, 36, 37, 43, 44, 47, 46, 46, 47, 47, 51, 52, 56, 57, 59, 60,
			35, 38, 39, 45, 46, 47, 46, 45, 47, 47, 50, 51, 55, 56, 58, 60,
			37, 40, 41, 47, 47, 47, 46, 45, 46, 47, 50, 50, 54, 55, 57, 58,
			41, 42, 43, 47, 48, 49, 49, 48, 49, 50, 52, 53, 57, 57, 59, 58,
			42, 43, 43, 47, 48, 50, 49, 49, 50, 50, 53, 54, 57, 58, 60, 61,
			49, 46, 47, 48, 50, 53, 53, 53, 54, 54, 57, 57, 60, 61, 62, 61,
			49, 46, 47, 48, 50, 53, 53, 54, 54, 55, 57, 57, 61, 61, 63, 64,
			48, 46, 46, 47, 49, 53, 54, 56, 57, 57, 60, 60, 64, 64, 65, 64,
			48, 45, 46, 46, 49, 53, 55, 56, 58, 58, 61, 61, 65, 65, 66, 67,
			49, 45, 45, 46, 48, 53, 56, 58, 61, 61, 64, 64, 67, 68, 69, 67,
			49, 46, 46, 46, 49, 53, 57, 59, 62, 62, 65, 66, 69, 69, 70, 70,
			50, 46, 46, 46, 49, 54, 57, 59, 63, 64, 67, 67, 71, 71, 73, 71,
			51, 47, 47, 47, 49, 54, 58, 61, 64, 66, 69, 70, 73, 74, 74, 74,
			52, 48, 48, 47, 50, 54, 58, 61, 65, 66, 71, 71, 75, 75, 77, 74,
			54, 50, 49, 48, 51, 55, 59, 62, 67, 68, 73, 73, 77, 78, 78, 78,
			54, 50, 50, 49, 51, 55, 59, 62, 67, 68, 73, 74, 78, 78, 81, 78,
			57, 52, 52, 50, 52, 56, 60, 64, 69, 70, 76, 77, 82, 82, 83, 82,
			57, 52, 52, 51, 53, 57, 61, 64, 69, 71, 77, 77, 82, 83, 85, 82,
			60, 54, 54, 52, 55, 58, 62, 65, 71, 72, 79, 79, 85, 86, 87, 86,
			61, 56, 55, 53, 56, 59, 63, 66, 72, 73, 80, 81, 86, 87, 88, 86,
			63, 57, 57, 55, 57, 60, 64, 67, 73, 75, 82, 82, 89, 90, 92, 90,
			64, 58, 58, 55, 58, 61, 65, 68, 73, 75, 82, 83, 89, 90, 92, 90,
			64, 59, 58, 56, 58, 61, 65, 68, 74, 75, 83, 83, 90, 91, 94, 95,
			66, 60, 59, 57, 59, 62, 66, 69, 75, 76, 84, 85, 91, 92, 94, 95,
			67, 61, 60, 58, 59, 63, 66, 70, 74, 77, 82, 85, 91, 93, 96, 96,
			68, 62, 61, 58, 59, 64, 65, 71, 72, 78, 81, 86, 89, 94, 95, 96,
			68, 62, 62, 59, 59, 65, 65, 71, 71, 79, 79, 87, 87, 95, 95, 98,
		},
	},
	{
		{ // level 5, luma
			32, 31, 32, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 32, 31,
			32, 32, 32, 32, 33, 31, 32, 32, 32, 32, 33, 33, 32, 32, 32, 32,
			32, 34, 34, 35, 32, 32, 32, 32, 32, 34, 34, 35, 35, 34, 34, 34,
			33, 33, 35, 35, 37, 37, 39, 34, 34, 34, 33, 33, 35, 35, 37, 37,
			39, 39, 36, 35, 35, 34, 34, 36, 36, 38, 38, 42, 42, 48, 36, 35,
			35, 34, 34, 36, 36, 38, 38, 42, 42, 48, 48, 39, 38, 38, 37, 37,
			39, 39, 40, 40, 45, 45, 50, 50, 54, 39, 38, 38, 37, 37, 39, 39,
			40, 40, 45, 45, 50, 50, 54, 54, 44, 42, 42, 41, 41, 42, 42, 42,
			42, 47, 47, 54, 54, 58, 58, 63, 44, 42, 42, 41, 41, 42, 42, 42,
			42, 47, 47, 54, 54, 58, 58, 63, 63, 48, 46, 46, 44, 44, 45, 45,
			46, 46, 51, 51, 57, 57, 61, 61, 67, 67, 71, 48, 46, 46, 44, 44,
			45, 45, 46, 46, 51, 51, 57, 57, 61, 61, 67, 67, 71, 71, 54, 51,
			51, 49, 49, 50, 50, 49, 49, 54, 54, 60, 60, 65, 65, 71, 71, 76,
			76, 82, 54, 51, 51, 49, 49, 50, 50, 49, 49, 54, 54, 60, 60, 65,
			65, 71, 71, 76, 76, 82, 82, 59, 56, 56, 54, 54, 54, 54, 53, 53,
			58, 58, 64, 64, 69, 69, 75, 75, 80, 80, 87, 87, 92, 59, 56, 56,
			54, 54, 54, 54, 53, 53, 58, 58, 64, 64, 69, 69, 75, 75, 80, 80,
			87, 87, 92, 92, 65, 62, 62, 59, 59, 59, 59, 58, 58, 63, 63, 68,
			68, 73, 73, 79, 79, 85, 85, 92, 92, 98, 98, 105, 65, 62, 62, 59,
			59, 59, 59, 58, 58, 63, 63, 68, 68, 73, 73, 79, 79, 85, 85, 92,
			92, 98, 98, 105, 105, 71, 68, 68, 65, 65, 64, 64, 63, 63, 68, 68,
			73, 73, 78, 78, 84, 84, 90, 90, 97, 97, 103, 103, 111, 111, 117, 71,
			68, 68, 65, 65, 64, 64, 63, 63, 68, 68, 73, 73, 78, 78, 84, 84,
			90, 90, 97, 97, 103, 103, 111, 111, 117, 117, 80, 76, 76, 72, 72, 71,
			71, 69, 69, 74, 74, 79, 79, 84, 84, 90, 90, 96, 96, 104, 104, 110,
			110, 118, 118, 125, 125, 134, 80, 76, 76, 72, 72, 71, 71, 69, 69, 74,
			74, 79, 79, 84, 84, 90, 90, 96, 96, 104, 104, 110, 110, 118, 118, 125,
			125, 134, 134, 83, 78, 78, 75, 75, 74, 74, 72, 72, 76, 76, 81, 81,
			86, 86, 92, 92, 99, 99, 106, 106, 113, 113, 121, 121, 128, 128, 137, 137,
			140, 83, 78, 78, 75, 75, 74, 74, 72, 72, 76, 76, 81, 81, 86, 86,
			92, 92, 99, 99, 106, 106, 113, 113, 121, 121, 128, 128, 137, 137, 140, 140,
			87, 83, 83, 79, 79, 77, 77, 75, 75, 80, 80, 84, 84, 90, 90, 96,
			96, 102, 102, 109, 109, 116, 116, 124, 124, 132, 132, 141, 141, 144, 144, 149,
			32, 31, 31, 32, 32, 36, 36, 44, 44, 53, 53, 65, 65, 79, 79, 87,
			31, 32, 32, 32, 32, 35, 35, 42, 42, 51, 51, 62, 62, 75, 75, 82,
			31, 32, 32, 32, 32, 35, 35, 42, 42, 51, 51, 62, 62, 75, 75, 82,
			31, 32, 32, 33, 33, 34, 34, 41, 41, 49, 49, 59, 59, 72, 72, 78,
			31, 32, 32, 33, 33, 34, 34, 41, 41, 49, 49, 59, 59, 72, 72, 78,
			32, 32, 32, 34, 34, 36, 36, 42, 42, 50, 50, 59, 59, 71, 71, 77,
			32, 32, 32, 34, 34, 36, 36, 42, 42, 50, 50, 59, 59, 71, 71, 77,
			32, 33, 33, 35, 35, 38, 38, 42, 42, 49, 49, 58, 58, 69, 69, 75,
			32, 33, 33, 35, 35, 38, 38, 42, 42, 49, 49, 58, 58, 69, 69, 75,
			34, 34, 34, 37, 37, 42, 42, 48, 48, 54, 54, 63, 63, 73, 73, 79,
			34, 34, 34, 37, 37, 42, 42, 48, 48, 54, 54, 63, 63, 73, 73, 79,
			36, 34, 34, 38, 38, 48, 48, 54, 54, 60, 60, 68, 68, 78, 78, 84,
			36, 34, 34, 38, 38, 48, 48, 54, 54, 60, 60, 68, 68, 78, 78, 84,
			39, 37, 37, 40, 40, 50, 50, 58, 58, 65, 65, 73, 73, 84, 84, 89,
			39, 37, 37, 40, 40, 50, 50, 58, 58, 65, 65, 73, 73, 84, 84, 89,
			44, 41, 41, 43, 43, 53, 53, 63, 63, 71, 71, 79, 79, 90, 90, 95,
			44, 41, 41, 43, 43, 53, 53, 63, 63, 71, 71, 79, 79, 90, 90, 95,
			48, 45, 45, 46, 46, 56, 56, 67, 67, 76, 76, 85, 85, 96, 96, 102,
			48, 45, 45, 46, 46, 56, 56, 67, 67, 76, 76, 85, 85, 96, 96, 102,
			53, 49, 49, 50, 50, 60, 60, 71, 71, 82, 82, 92, 92, 103, 103, 109,
			53, 49, 49, 50, 50, 60, 60, 71, 71, 82, 82, 92, 92, 103, 103, 109,
			58, 54, 54, 54, 54, 63, 63, 75, 75, 87, 87, 98, 98, 110, 110, 116,
			58, 54, 54, 54, 54, 63, 63, 75, 75, 87, 87, 98, 98, 110, 110, 116,
			65, 60, 60, 58, 58, 68, 68, 79, 79, 92, 92, 105, 105, 118, 118, 124,
			65, 60, 60, 58, 58, 68, 68, 79, 79, 92, 92, 105, 105, 118, 118, 124,
			71, 65, 65, 63, 63, 73, 73, 84, 84, 97, 97, 111, 111, 125, 125, 132,
			71, 65, 65, 63, 63, 73, 73, 84, 84, 97, 97, 111, 111, 125, 125, 132,
			79, 72, 72, 70, 70, 79, 79, 90, 90, 104, 104, 118, 118, 133, 133, 141,
			79, 72, 72, 70, 70, 79, 79, 90, 90, 104, 104, 118, 118, 133, 133, 141,
			82, 75, 75, 72, 72, 81, 81, 92, 92, 106, 106, 121, 121, 136, 136, 144,
			82, 75, 75, 72, 72, 81, 81, 92, 92, 106, 106, 121, 121, 136, 136, 144,
			87, 79, 79, 76, 76, 84, 84, 96, 96, 109, 109, 124, 124, 141, 141, 149,
		},
		{ // level 5, chroma
			32, 31, 31, 31, 31, 31, 30, 31, 31, 32, 30, 31, 31, 32, 32, 33,
			34, 34, 35, 35, 39, 33, 34, 34, 35, 35, 39, 39, 36, 38, 38, 40,
			40, 43, 43, 47, 36, 38, 38, 40, 40, 43, 43, 47, 47, 41, 42, 42,
			42, 42, 45, 45, 47, 47, 48, 41, 42, 42, 42, 42, 45, 45, 47, 47,
			48, 48, 49, 47, 47, 46, 46, 47, 47, 48, 48, 50, 50, 53, 49, 47,
			47, 46, 46, 47, 47, 48, 48, 50, 50, 53, 53, 48, 47, 47, 45, 45,
			46, 46, 46, 46, 49, 49, 53, 53, 54, 48, 47, 47, 45, 45, 46, 46,
			46, 46, 49, 49, 53, 53, 54, 54, 49, 47, 47, 45, 45, 45, 45, 45,
			45, 49, 49, 53, 53, 55, 55, 58, 49, 47, 47, 45, 45, 45, 45, 45,
			45, 49, 49, 53, 53, 55, 55, 58, 58, 50, 48, 48, 46, 46, 46, 46,
			46, 46, 50, 50, 54, 54, 56, 56, 60, 60, 61, 50, 48, 48, 46, 46,
			46, 46, 46, 46, 50, 50, 54, 54, 56, 56, 60, 60, 61, 61, 52, 50,
			50, 47, 47, 47, 47, 47, 47, 50, 50, 54, 54, 57, 57, 61, 61, 63,
			63, 66, 52, 50, 50, 47, 47, 47, 47, 47, 47, 50, 50, 54, 54, 57,
			57, 61, 61, 63, 63, 66, 66, 54, 52, 52, 49, 49, 49, 49, 48, 48,
			52, 52, 55, 55, 58, 58, 62, 62, 65, 65, 68, 68, 71, 54, 52, 52,
			49, 49, 49, 49, 48, 48, 52, 52, 55, 55, 58, 58, 62, 62, 65, 65,
			68, 68, 71, 71, 57, 54, 54, 52, 52, 51, 51, 50, 50, 53, 53, 56,
			56, 60, 60, 63, 63, 67, 67, 70, 70, 73, 73, 76, 57, 54, 54, 52,
			52, 51, 51, 50, 50, 53, 53, 56, 56, 60, 60, 63, 63, 67, 67, 70,
			70, 73, 73, 76, 76, 60, 57, 57, 54, 54, 53, 53, 52, 52, 55, 55,
			58, 58, 61, 61, 65, 65, 68, 68, 72, 72, 75, 75, 79, 79, 82, 60,
			57, 57, 54, 54, 53, 53, 52, 52, 55, 55, 58, 58, 61, 61, 65, 65,
			68, 68, 72, 72, 75, 75, 79, 79, 82, 82, 63, 60, 60, 57, 57, 56,
			56, 54, 54, 57, 57, 60, 60, 63, 63, 67, 67, 71, 71, 75, 75, 78,
			78, 82, 82, 85, 85, 89, 63, 60, 60, 57, 57, 56, 56, 54, 54, 57,
			57, 60, 60, 63, 63, 67, 67, 71, 71, 75, 75, 78, 78, 82, 82, 85,
			85, 89, 89, 65, 61, 61, 58, 58, 57, 57, 55, 55, 58, 58, 61, 61,
			64, 64, 68, 68, 71, 71, 75, 75, 79, 79, 83, 83, 86, 86, 90, 90,
			91, 65, 61, 61, 58, 58, 57, 57, 55, 55, 58, 58, 61, 61, 64, 64,
			68, 68, 71, 71, 75, 75, 79, 79, 83, 83, 86, 86, 90, 90, 91, 91,
			67, 63, 63, 60, 60, 59, 59, 57, 57, 60, 60, 62, 62, 66, 66, 69,
			69, 72, 72, 76, 76, 80, 80, 84, 84, 88, 88, 92, 92, 93, 93, 95,
			32, 31, 31, 37, 37, 48, 48, 49, 49, 52, 52, 57, 57, 63, 63, 66,
			31, 31, 31, 38, 38, 47, 47, 47, 47, 50, 50, 54, 54, 60, 60, 63,
			31, 31, 31, 38, 38, 47, 47, 47, 47, 50, 50, 54, 54, 60, 60, 63,
			30, 32, 32, 40, 40, 46, 46, 45, 45, 48, 48, 52, 52, 57, 57, 60,
			30, 32, 32, 40, 40, 46, 46, 45, 45, 48, 48, 52, 52, 57, 57, 60,
			33, 36, 36, 43, 43, 47, 47, 46, 46, 47, 47, 51, 51, 56, 56, 59,
			33, 36, 36, 43, 43, 47, 47, 46, 46, 47, 47, 51, 51, 56, 56, 59,
			37, 40, 40, 47, 47, 47, 47, 45, 45, 47, 47, 50, 50, 54, 54, 57,
			37, 40, 40, 47, 47, 47, 47, 45, 45, 47, 47, 50, 50, 54, 54, 57,
			42, 43, 43, 47, 47, 50, 50, 49, 49, 50, 50, 53, 53, 57, 57, 60,
			42, 43, 43, 47, 47, 50, 50, 49, 49, 50, 50, 53, 53, 57, 57, 60,
			49, 46, 46, 48, 48, 53, 53, 53, 53, 54, 54, 57, 57, 60, 60, 62,
			49, 46, 46, 48, 48, 53, 53, 53, 53, 54, 54, 57, 57, 60, 60, 62,
			48, 46, 46, 47, 47, 53, 53, 56, 56, 57, 57, 60, 60, 64, 64, 66,
			48, 46, 46, 47, 47, 53, 53, 56, 56, 57, 57, 60, 60, 64, 64, 66,
			49, 45, 45, 46, 46, 53, 53, 58, 58, 61, 61, 64, 64, 67, 67, 69,
			49, 45, 45, 46, 46, 53, 53, 58, 58, 61, 61, 64, 64, 67, 67, 69,
			50, 46, 46, 46, 46, 54, 54, 59, 59, 64, 64, 67, 67, 71, 71, 73,
			50, 46, 46, 46, 46, 54, 54, 59, 59, 64, 64, 67, 67, 71, 71, 73,
			52, 48, 48, 47, 47, 54, 54, 61, 61, 66, 66, 71, 71, 75, 75, 77,
			52, 48, 48, 47, 47, 54, 54, 61, 61, 66, 66, 71, 71, 75, 75, 77,
			54, 50, 50, 49, 49, 55, 55, 62, 62, 68, 68, 73, 73, 78, 78, 80,
			54, 50, 50, 49, 49, 55, 55, 62, 62, 68, 68, 73, 73, 78, 78, 80,
			57, 52, 52, 50, 50, 56, 56, 64, 64, 70, 70, 76, 76, 82, 82, 84,
			57, 52, 52, 50, 50, 56, 56, 64, 64, 70, 70, 76, 76, 82, 82, 84,
			60, 54, 54, 52, 52, 58, 58, 65, 65, 72, 72, 79, 79, 85, 85, 88,
			60, 54, 54, 52, 52, 58, 58, 65, 65, 72, 72, 79, 79, 85, 85, 88,
			63, 57, 57, 55, 55, 60, 60, 67, 67, 75, 75, 82, 82, 89, 89, 92,
			63, 57, 57, 55, 55, 60, 60, 67, 67, 75, 75, 82, 82, 89, 89, 92,
			64, 59, 59, 56, 56, 61, 61, 68, 68, 75, 75, 83, 83, 90, 90, 93,
			64, 59, 59, 56, 56, 61, 61, 68, 68, 75, 75, 83, 83, 90, 90, 93,
			66, 60, 60, 57, 57, 63, 63, 69, 69, 77, 77, 84, 84, 92, 92, 95,
		},
	},
	{
		{ // level 6, luma
			32, 31, 31, 31, 32, 32, 31, 32, 32, 32, 31, 32, 32, 32, 32, 31,
			32, 32, 32, 32, 32, 31, 32, 32, 32, 32, 33, 33, 32, 32, 32, 32,
			32, 33, 33, 34, 32, 32, 32, 32, 32, 33, 34, 34, 35, 32, 32, 32,
			32, 33, 33, 34, 34, 35, 35, 34, 34, 34, 33, 33, 34, 35, 35, 37,
			37, 39, 34, 34, 34, 33, 33, 34, 35, 35, 37, 37, 39, 39, 35, 35,
			35, 34, 34, 35, 36, 36, 38, 38, 42, 42, 46, 36, 35, 35, 34, 34,
			35, 36, 37, 38, 38, 42, 42, 47, 48, 38, 37, 37, 36, 36, 37, 38,
			38, 39, 40, 44, 44, 48, 50, 51, 39, 38, 38, 38, 37, 38, 39, 39,
			40, 41, 45, 45, 49, 50, 52, 54, 41, 40, 40, 39, 38, 39, 40, 40,
			41, 41, 46, 46, 50, 52, 54, 55, 57, 44, 42, 42, 41, 41, 41, 42,
			42, 42, 43, 47, 47, 52, 54, 56, 58, 60, 63, 45, 43, 43, 42, 41,
			42, 42, 43, 43, 43, 48, 48, 53, 54, 57, 58, 60, 64, 65, 48, 46,
			46, 45, 44, 45, 45, 45, 46, 46, 51, 51, 55, 57, 59, 61, 63, 67,
			68, 71, 48, 46, 46, 45, 44, 45, 45, 45, 46, 46, 51, 51, 55, 57,
			59, 61, 63, 67, 68, 71, 71, 53, 51, 51, 49, 49, 49, 49, 49, 49,
			49, 54, 54, 58, 59, 62, 64, 67, 71, 72, 75, 75, 81, 54, 52, 51,
			50, 49, 49, 50, 49, 49, 50, 54, 54, 59, 60, 63, 65, 67, 71, 72,
			76, 76, 81, 82, 57, 55, 55, 53, 52, 52, 52, 52, 52, 52, 57, 57,
			61, 62, 65, 67, 70, 74, 75, 79, 79, 85, 85, 89, 59, 56, 56, 54,
			54, 54, 54, 54, 53, 54, 58, 58, 62, 64, 67, 69, 71, 75, 76, 80,
			80, 86, 87, 90, 92, 62, 59, 59, 57, 56, 56, 56, 56, 55, 56, 60,
			60, 64, 66, 69, 71, 73, 77, 78, 83, 83, 89, 89, 93, 95, 98, 65,
			62, 62, 60, 59, 59, 59, 59, 58, 58, 63, 63, 67, 68, 71, 73, 75,
			79, 81, 85, 85, 91, 92, 96, 98, 101, 105, 67, 64, 64, 62, 61, 61,
			60, 60, 59, 60, 64, 64, 68, 69, 72, 74, 77, 81, 82, 87, 87, 93,
			94, 98, 99, 103, 106, 108, 71, 68, 68, 66, 65, 64, 64, 64, 63, 63,
			68, 68, 72, 73, 76, 78, 80, 84, 85, 90, 90, 97, 97, 102, 103, 107,
			111, 113, 117, 72, 69, 69, 66, 65, 65, 65, 64, 63, 64, 68, 68, 72,
			73, 76, 78, 81, 85, 86, 91, 91, 97, 98, 102, 104, 108, 111, 113, 118,
			119, 80, 76, 76, 73, 72, 72, 71, 70, 69, 70, 74, 74, 78, 79, 82,
			84, 86, 90, 91, 96, 96, 103, 104, 108, 110, 114, 118, 120, 125, 126, 134,
			80, 76, 76, 73, 72, 72, 71, 70, 69, 70, 74, 74, 78, 79, 82, 84,
			86, 90, 91, 96, 96, 103, 104, 108, 110, 114, 118, 120, 125, 126, 134, 134,
			32, 31, 31, 32, 32, 34, 36, 38, 44, 44, 53, 53, 62, 65, 73, 79,
			31, 32, 32, 32, 32, 34, 35, 37, 42, 43, 51, 51, 60, 62, 70, 75,
			31, 32, 32, 32, 32, 34, 35, 37, 42, 43, 51, 51, 59, 62, 69, 75,
			31, 32, 32, 32, 32, 33, 35, 36, 41, 42, 50, 50, 58, 60, 67, 73,
			31, 32, 32, 32, 33, 33, 34, 36, 41, 41, 49, 49, 57, 59, 66, 72,
			31, 32, 32, 33, 33, 34, 35, 37, 41, 42, 49, 49, 57, 59, 66, 71,
			32, 32, 32, 33, 34, 35, 36, 38, 42, 43, 50, 50, 57, 59, 65, 71,
			32, 32, 32, 34, 34, 35, 37, 38, 42, 43, 49, 49, 56, 59, 65, 70,
			32, 32, 33, 34, 35, 37, 38, 39, 42, 43, 49, 49, 56, 58, 64, 69,
			32, 33, 33, 34, 35, 37, 39, 40, 43, 44, 50, 50, 56, 58, 64, 69,
			34, 34, 34, 36, 37, 39, 42, 44, 48, 48, 54, 54, 61, 63, 69, 73,
			34, 34, 34, 36, 37, 39, 42, 44, 48, 48, 54, 54, 61, 63, 69, 73,
			35, 34, 34, 37, 38, 42, 47, 48, 52, 53, 59, 59, 65, 67, 73, 77,
			36, 35, 34, 37, 38, 43, 48, 49, 54, 54, 60, 60, 66, 68, 74, 78,
			38, 36, 36, 38, 40, 44, 49, 51, 56, 57, 63, 63, 69, 71, 77, 81,
			39, 38, 37, 40, 40, 45, 50, 52, 58, 58, 65, 65, 71, 73, 79, 84,
			41, 39, 39, 41, 41, 46, 51, 54, 60, 60, 67, 67, 74, 76, 81, 86,
			44, 41, 41, 42, 43, 48, 53, 56, 63, 64, 71, 71, 78, 79, 85, 90,
			44, 42, 42, 43, 43, 48, 54, 56, 64, 64, 72, 72, 79, 81, 86, 91,
			48, 45, 45, 46, 46, 51, 56, 59, 67, 67, 76, 76, 83, 85, 91, 96,
			48, 45, 45, 46, 46, 51, 56, 59, 67, 67, 76, 76, 83, 85, 91, 96,
			53, 49, 49, 49, 49, 54, 59, 62, 71, 71, 81, 81, 89, 91, 98, 103,
			53, 50, 49, 50, 50, 54, 60, 63, 71, 72, 82, 82, 90, 92, 99, 103,
			57, 53, 52, 52, 52, 57, 62, 65, 74, 75, 85, 85, 94, 96, 103, 108,
			58, 54, 54, 54, 54, 58, 63, 67, 75, 76, 87, 87, 95, 98, 105, 110,
			61, 57, 57, 56, 56, 60, 66, 69, 77, 78, 89, 89, 98, 101, 108, 114,
			65, 60, 60, 59, 58, 63, 68, 71, 79, 80, 92, 92, 102, 105, 112, 118,
			67, 62, 61, 60, 60, 64, 69, 72, 81, 82, 94, 94, 103, 106, 114, 120,
			71, 66, 65, 64, 63, 68, 73, 76, 84, 85, 97, 97, 108, 111, 119, 125,
			72, 66, 66, 64, 64, 68, 73, 76, 85, 86, 98, 98, 108, 111, 119, 125,
			79, 73, 72, 71, 70, 74, 79, 82, 90, 91, 104, 104, 115, 118, 127, 133,
			79, 73, 72, 71, 70, 74, 79, 82, 90, 91, 104, 104, 115, 118, 127, 133,
		},
		{ // level 6, chroma
			32, 31, 31, 31, 31, 31, 30, 31, 31, 31, 30, 31, 31, 31, 32, 32,
			32, 33, 33, 33, 35, 33, 34, 34, 35, 35, 37, 39, 34, 35, 35, 36,
			36, 38, 40, 41, 36, 38, 38, 39, 40, 41, 43, 44, 47, 37, 38, 39,
			40, 40, 42, 43, 44, 47, 47, 41, 42, 42, 42, 42, 43, 45, 45, 47,
			47, 48, 41, 42, 42, 42, 42, 43, 45, 45, 47, 47, 48, 48, 47, 46,
			46, 46, 45, 46, 47, 47, 47, 48, 50, 50, 52, 49, 48, 47, 47, 46,
			47, 47, 47, 48, 48, 50, 50, 52, 53, 49, 47, 47, 46, 46, 46, 46,
			47, 47, 47, 50, 50, 52, 53, 53, 48, 47, 47, 46, 45, 46, 46, 46,
			46, 47, 49, 49, 52, 53, 54, 54, 49, 47, 47, 46, 45, 45, 46, 46,
			46, 46, 49, 49, 52, 53, 54, 55, 55, 49, 47, 47, 45, 45, 45, 45,
			45, 45, 45, 49, 49, 52, 53, 55, 55, 57, 58, 49, 47, 47, 46, 45,
			45, 45, 45, 45, 46, 49, 49, 52, 53, 55, 56, 57, 59, 59, 50, 48,
			48, 47, 46, 46, 46, 46, 46, 46, 50, 50, 53, 54, 55, 56, 58, 60,
			60, 61, 50, 48, 48, 47, 46, 46, 46, 46, 46, 46, 50, 50, 53, 54,
			55, 56, 58, 60, 60, 61, 61, 52, 50, 49, 48, 47, 47, 47, 47, 46,
			47, 50, 50, 53, 54, 56, 57, 59, 61, 61, 63, 63, 66, 52, 50, 50,
			48, 47, 47, 47, 47, 47, 47, 50, 50, 53, 54, 56, 57, 59, 61, 61,
			63, 63, 66, 66, 54, 51, 51, 50, 49, 49, 49, 48, 48, 48, 51, 51,
			54, 55, 57, 58, 60, 62, 62, 65, 65, 67, 68, 69, 54, 52, 52, 50,
			49, 49, 49, 49, 48, 48, 52, 52, 55, 55, 57, 58, 60, 62, 63, 65,
			65, 68, 68, 70, 71, 56, 53, 53, 51, 51, 50, 50, 50, 49, 49, 52,
			52, 55, 56, 58, 59, 61, 63, 63, 66, 66, 69, 69, 71, 72, 73, 57,
			54, 54, 52, 52, 51, 51, 51, 50, 50, 53, 53, 56, 56, 58, 60, 61,
			63, 64, 67, 67, 70, 70, 72, 73, 75, 76, 58, 55, 55, 53, 52, 52,
			52, 51, 50, 51, 54, 54, 56, 57, 59, 60, 62, 64, 65, 67, 67, 71,
			71, 73, 74, 75, 77, 78, 60, 57, 57, 55, 54, 54, 53, 53, 52, 52,
			55, 55, 58, 58, 60, 61, 63, 65, 66, 68, 68, 72, 72, 74, 75, 77,
			79, 80, 82, 60, 57, 57, 55, 54, 54, 54, 53, 52, 52, 55, 55, 58,
			58, 60, 62, 63, 65, 66, 69, 69, 72, 73, 75, 76, 77, 79, 80, 82,
			82, 63, 60, 60, 58, 57, 57, 56, 55, 54, 55, 57, 57, 60, 60, 62,
			63, 65, 67, 68, 71, 71, 74, 75, 77, 78, 80, 82, 83, 85, 85, 89,
			63, 60, 60, 58, 57, 57, 56, 55, 54, 55, 57, 57, 60, 60, 62, 63,
			65, 67, 68, 71, 71, 74, 75, 77, 78, 80, 82, 83, 85, 85, 89, 89,
			32, 31, 31, 35, 37, 42, 48, 48, 49, 49, 52, 52, 56, 57, 61, 63,
			31, 31, 31, 36, 38, 42, 47, 47, 47, 47, 50, 50, 54, 54, 58, 60,
			31, 31, 31, 36, 38, 42, 47, 47, 47, 47, 50, 50, 53, 54, 57, 60,
			30, 32, 32, 37, 39, 42, 46, 46, 46, 46, 48, 48, 52, 52, 56, 58,
			30, 32, 32, 37, 40, 42, 46, 46, 45, 45, 48, 48, 51, 52, 55, 57,
			32, 33, 34, 39, 41, 44, 46, 46, 45, 45, 48, 48, 51, 51, 54, 57,
			33, 35, 36, 40, 43, 45, 47, 46, 46, 46, 47, 47, 50, 51, 54, 56,
			34, 37, 37, 42, 44, 45, 47, 47, 45, 46, 47, 47, 50, 51, 53, 55,
			37, 40, 40, 45, 47, 47, 47, 47, 45, 46, 47, 47, 49, 50, 52, 54,
			37, 40, 40, 45, 47, 47, 48, 47, 46, 46, 47, 47, 49, 50, 53, 55,
			42, 43, 43, 46, 47, 48, 50, 50, 49, 49, 50, 50, 53, 53, 56, 57,
			42, 43, 43, 46, 47, 48, 50, 50, 49, 49, 50, 50, 53, 53, 56, 57,
			47, 46, 46, 47, 48, 50, 52, 52, 53, 53, 53, 53, 55, 56, 58, 60,
			49, 47, 46, 47, 48, 50, 53, 53, 53, 54, 54, 54, 56, 57, 59, 60,
			48, 46, 46, 47, 47, 50, 53, 53, 55, 55, 56, 56, 58, 58, 61, 62,
			48, 46, 46, 46, 47, 50, 53, 54, 56, 56, 57, 57, 59, 60, 62, 64,
			48, 46, 45, 46, 46, 49, 53, 54, 57, 57, 59, 59, 61, 61, 63, 65,
			49, 45, 45, 45, 46, 49, 53, 55, 58, 59, 61, 61, 63, 64, 66, 67,
			49, 46, 45, 46, 46, 49, 53, 55, 58, 59, 62, 62, 64, 64, 66, 68,
			50, 47, 46, 46, 46, 50, 54, 55, 59, 60, 64, 64, 66, 67, 69, 71,
			50, 47, 46, 46, 46, 50, 54, 55, 59, 60, 64, 64, 66, 67, 69, 71,
			52, 48, 48, 47, 47, 50, 54, 56, 61, 61, 66, 66, 69, 70, 72, 74,
			52, 48, 48, 47, 47, 50, 54, 56, 61, 61, 66, 66, 70, 71, 73, 75,
			53, 50, 49, 48, 48, 51, 55, 57, 62, 62, 68, 68, 71, 72, 75, 77,
			54, 50, 50, 49, 49, 52, 55, 57, 62, 63, 68, 68, 72, 73, 76, 78,
			55, 51, 51, 50, 49, 52, 56, 58, 63, 63, 69, 69, 74, 75, 78, 80,
			57, 52, 52, 51, 50, 53, 56, 58, 64, 64, 70, 70, 75, 76, 79, 82,
			58, 53, 53, 51, 51, 54, 57, 59, 64, 65, 71, 71, 76, 77, 80, 83,
			60, 55, 54, 53, 52, 55, 58, 60, 65, 66, 72, 72, 77, 79, 82, 85,
			60, 55, 55, 53, 53, 55, 59, 60, 65, 66, 73, 73, 78, 79, 83, 85,
			63, 58, 57, 56, 55, 58, 60, 62, 67, 68, 75, 75, 80, 82, 86, 89,
			63, 58, 57, 56, 55, 58, 60, 62, 67, 68, 75, 75, 80, 82, 86, 89,
		},
	},
	{
		{ // level 7, luma
			32, 31, 31, 31, 31, 32, 31, 32, 32, 32, 31, 32, 32, 32, 32, 31,
			32, 32, 32, 32, 32, 31, 32, 32, 32, 32, 32, 33, 31, 32, 32, 32,
			32, 32, 33, 33, 32, 32, 32, 32, 32, 32, 33, 33, 34, 32, 32, 32,
			32, 32, 32, 33, 34, 34, 35, 32, 32, 32, 32, 32, 32, 33, 34, 34,
			35, 35, 33, 33, 33, 33, 33, 33, 34, 35, 35, 36, 36, 38, 34, 34,
			34, 34, 33, 33, 35, 35, 36, 37, 37, 39, 39, 34, 34, 34, 34, 34,
			34, 35, 36, 36, 37, 37, 40, 41, 42, 36, 35, 35, 35, 34, 34, 36,
			36, 37, 38, 38, 42, 42, 45, 48, 36, 35, 35, 35, 34, 34, 36, 36,
			37, 38, 38, 42, 42, 45, 48, 48, 38, 38, 38, 37, 37, 37, 38, 38,
			39, 40, 40, 43, 44, 46, 50, 50, 52, 39, 38, 38, 38, 37, 37, 39,
			39, 39, 40, 40, 44, 45, 47, 50, 50, 53, 54, 41, 40, 40, 39, 38,
			38, 40, 40, 40, 41, 41, 45, 46, 48, 52, 52, 54, 55, 57, 44, 42,
			42, 42, 41, 41, 42, 42, 42, 42, 42, 46, 47, 50, 54, 54, 57, 58,
			60, 63, 44, 42, 42, 42, 41, 41, 42, 42, 42, 42, 42, 46, 47, 50,
			54, 54, 57, 58, 60, 63, 63, 47, 46, 45, 45, 44, 44, 44, 45, 45,
			45, 45, 49, 50, 52, 56, 56, 59, 60, 62, 66, 66, 69, 48, 47, 46,
			45, 44, 44, 45, 45, 45, 46, 46, 50, 51, 53, 57, 57, 60, 61, 63,
			67, 67, 70, 71, 50, 49, 48, 47, 46, 46, 47, 47, 47, 47, 47, 51,
			52, 54, 58, 58, 61, 62, 65, 68, 68, 72, 73, 75, 54, 52, 51, 50,
			49, 49, 49, 50, 49, 49, 49, 53, 54, 56, 60, 60, 64, 65, 67, 71,
			71, 75, 76, 78, 82, 54, 52, 51, 50, 49, 49, 49, 50, 49, 49, 49,
			53, 54, 56, 60, 60, 64, 65, 67, 71, 71, 75, 76, 78, 82, 82, 58,
			56, 55, 54, 53, 53, 53, 53, 53, 52, 52, 56, 57, 59, 63, 63, 67,
			68, 70, 74, 74, 78, 79, 82, 86, 86, 90, 59, 57, 56, 55, 54, 54,
			54, 54, 54, 53, 53, 57, 58, 60, 64, 64, 68, 69, 71, 75, 75, 79,
			80, 83, 87, 87, 91, 92, 61, 59, 58, 57, 56, 56, 56, 56, 55, 55,
			55, 59, 60, 62, 65, 65, 69, 70, 73, 77, 77, 81, 82, 85, 89, 89,
			93, 94, 97, 65, 63, 62, 61, 59, 59, 59, 59, 59, 58, 58, 62, 63,
			65, 68, 68, 72, 73, 75, 79, 79, 84, 85, 88, 92, 92, 97, 98, 101,
			105, 65, 63, 62, 61, 59, 59, 59, 59, 59, 58, 58, 62, 63, 65, 68,
			68, 72, 73, 75, 79, 79, 84, 85, 88, 92, 92, 97, 98, 101, 105, 105,
			70, 67, 67, 65, 64, 64, 63, 63, 63, 62, 62, 66, 67, 69, 72, 72,
			76, 77, 79, 83, 83, 88, 89, 92, 96, 96, 101, 102, 105, 109, 109, 114,
			32, 31, 31, 31, 32, 32, 35, 36, 39, 44, 44, 51, 53, 58, 65, 65,
			31, 32, 32, 32, 32, 32, 35, 35, 38, 42, 42, 49, 52, 56, 63, 63,
			31, 32, 32, 32, 32, 32, 35, 35, 38, 42, 42, 49, 51, 55, 62, 62,
			31, 32, 32, 32, 32, 32, 34, 35, 37, 41, 41, 48, 50, 54, 61, 61,
			31, 32, 32, 32, 33, 33, 34, 34, 37, 41, 41, 47, 49, 53, 59, 59,
			31, 32, 32, 32, 33, 33, 34, 34, 37, 41, 41, 47, 49, 53, 59, 59,
			31, 32, 32, 33, 34, 34, 35, 36, 38, 42, 42, 48, 49, 53, 59, 59,
			32, 32, 32, 33, 34, 34, 36, 36, 38, 42, 42, 48, 50, 53, 59, 59,
			32, 32, 32, 33, 34, 34, 36, 37, 39, 42, 42, 48, 49, 53, 58, 58,
			32, 32, 33, 34, 35, 35, 37, 38, 40, 42, 42, 48, 49, 52, 58, 58,
			32, 32, 33, 34, 35, 35, 37, 38, 40, 42, 42, 48, 49, 52, 58, 58,
			33, 33, 33, 35, 36, 36, 40, 41, 43, 46, 46, 52, 53, 56, 62, 62,
			34, 34, 34, 35, 37, 37, 41, 42, 44, 48, 48, 53, 54, 57, 63, 63,
			34, 34, 34, 35, 37, 37, 43, 44, 46, 50, 50, 55, 56, 59, 65, 65,
			36, 35, 34, 36, 38, 38, 46, 48, 50, 54, 54, 58, 60, 63, 68, 68,
			36, 35, 34, 36, 38, 38, 46, 48, 50, 54, 54, 58, 60, 63, 68, 68,
			38, 37, 37, 38, 40, 40, 47, 50, 52, 57, 57, 62, 64, 67, 72, 72,
			39, 38, 37, 39, 40, 40, 48, 50, 53, 58, 58, 63, 65, 68, 73, 73,
			41, 39, 39, 40, 41, 41, 49, 51, 54, 60, 60, 66, 67, 70, 76, 76,
			44, 41, 41, 42, 43, 43, 51, 53, 57, 63, 63, 69, 71, 74, 79, 79,
			44, 41, 41, 42, 43, 43, 51, 53, 57, 63, 63, 69, 71, 74, 79, 79,
			47, 44, 44, 44, 45, 45, 53, 56, 59, 66, 66, 73, 75, 78, 84, 84,
			48, 45, 45, 45, 46, 46, 54, 56, 60, 67, 67, 74, 76, 79, 85, 85,
			50, 47, 46, 47, 47, 47, 55, 58, 61, 68, 68, 76, 78, 82, 88, 88,
			53, 50, 49, 50, 50, 50, 57, 60, 64, 71, 71, 79, 82, 86, 92, 92,
			53, 50, 49, 50, 50, 50, 57, 60, 64, 71, 71, 79, 82, 86, 92, 92,
			57, 54, 53, 53, 53, 53, 60, 63, 67, 74, 74, 83, 86, 90, 97, 97,
			58, 55, 54, 54, 54, 54, 61, 63, 68, 75, 75, 84, 87, 91, 98, 98,
			61, 57, 56, 56, 56, 56, 63, 65, 69, 77, 77, 86, 89, 93, 100, 100,
			65, 61, 60, 59, 58, 58, 66, 68, 72, 79, 79, 89, 92, 97, 105, 105,
			65, 61, 60, 59, 58, 58, 66, 68, 72, 79, 79, 89, 92, 97, 105, 105,
			70, 65, 64, 63, 62, 62, 70, 72, 76, 83, 83, 93, 96, 101, 109, 109,
		},
		{ // level 7, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 31, 31, 31, 32, 30,
			31, 31, 31, 32, 32, 33, 33, 34, 34, 34, 34, 37, 33, 34, 34, 35,
			35, 35, 38, 39, 34, 36, 36, 36, 37, 37, 40, 40, 42, 36, 38, 38,
			39, 40, 40, 42, 43, 45, 47, 36, 38, 38, 39, 40, 40, 42, 43, 45,
			47, 47, 40, 41, 41, 41, 42, 42, 44, 44, 45, 47, 47, 48, 41, 42,
			42, 42, 42, 42, 44, 45, 46, 47, 47, 48, 48, 44, 44, 44, 44, 44,
			44, 45, 46, 46, 47, 47, 49, 49, 50, 49, 48, 47, 47, 46, 46, 47,
			47, 47, 48, 48, 50, 50, 51, 53, 49, 48, 47, 47, 46, 46, 47, 47,
			47, 48, 48, 50, 50, 51, 53, 53, 48, 47, 47, 46, 45, 45, 46, 46,
			46, 47, 47, 49, 50, 51, 53, 53, 54, 48, 47, 47, 46, 45, 45, 46,
			46, 46, 46, 46, 49, 49, 51, 53, 53, 54, 54, 49, 47, 47, 46, 45,
			45, 46, 46, 46, 46, 46, 49, 49, 51, 53, 53, 54, 55, 55, 49, 47,
			47, 46, 45, 45, 45, 45, 45, 45, 45, 48, 49, 51, 53, 53, 55, 55,
			57, 58, 49, 47, 47, 46, 45, 45, 45, 45, 45, 45, 45, 48, 49, 51,
			53, 53, 55, 55, 57, 58, 58, 50, 48, 48, 47, 46, 46, 46, 46, 46,
			46, 46, 49, 50, 51, 54, 54, 56, 56, 57, 59, 59, 61, 50, 49, 48,
			47, 46, 46, 46, 46, 46, 46, 46, 49, 50, 51, 54, 54, 56, 56, 58,
			60, 60, 61, 61, 51, 49, 49, 48, 47, 47, 47, 47, 47, 46, 46, 49,
			50, 51, 54, 54, 56, 57, 58, 60, 60, 62, 62, 63, 52, 50, 50, 49,
			47, 47, 47, 47, 47, 47, 47, 49, 50, 52, 54, 54, 57, 57, 59, 61,
			61, 63, 63, 65, 66, 52, 50, 50, 49, 47, 47, 47, 47, 47, 47, 47,
			49, 50, 52, 54, 54, 57, 57, 59, 61, 61, 63, 63, 65, 66, 66, 54,
			52, 51, 50, 49, 49, 49, 49, 48, 48, 48, 51, 51, 53, 55, 55, 58,
			58, 60, 62, 62, 64, 65, 66, 68, 68, 70, 54, 52, 52, 51, 49, 49,
			49, 49, 49, 48, 48, 51, 52, 53, 55, 55, 58, 58, 60, 62, 62, 64,
			65, 66, 68, 68, 70, 71, 55, 53, 53, 52, 50, 50, 50, 50, 49, 49,
			49, 51, 52, 54, 56, 56, 58, 59, 60, 63, 63, 65, 66, 67, 69, 69,
			71, 72, 73, 57, 55, 54, 53, 52, 52, 51, 51, 50, 50, 50, 52, 53,
			54, 56, 56, 59, 60, 61, 63, 63, 66, 67, 68, 70, 70, 73, 73, 74,
			76, 57, 55, 54, 53, 52, 52, 51, 51, 50, 50, 50, 52, 53, 54, 56,
			56, 59, 60, 61, 63, 63, 66, 67, 68, 70, 70, 73, 73, 74, 76, 76,
			59, 57, 56, 55, 54, 54, 53, 53, 52, 51, 51, 54, 55, 56, 58, 58,
			60, 61, 63, 65, 65, 67, 68, 70, 72, 72, 74, 75, 76, 78, 78, 80,
			32, 31, 31, 33, 37, 37, 45, 48, 48, 49, 49, 51, 52, 54, 57, 57,
			31, 31, 31, 34, 38, 38, 45, 47, 47, 47, 47, 50, 50, 52, 55, 55,
			31, 31, 31, 34, 38, 38, 45, 47, 47, 47, 47, 49, 50, 51, 54, 54,
			31, 31, 32, 34, 39, 39, 45, 46, 46, 46, 46, 48, 49, 51, 53, 53,
			30, 32, 32, 35, 40, 40, 44, 46, 45, 45, 45, 47, 48, 49, 52, 52,
			30, 32, 32, 35, 40, 40, 44, 46, 45, 45, 45, 47, 48, 49, 52, 52,
			33, 34, 35, 37, 42, 42, 46, 47, 46, 45, 45, 47, 47, 49, 51, 51,
			33, 35, 36, 38, 43, 43, 46, 47, 46, 46, 46, 47, 47, 49, 51, 51,
			35, 37, 37, 40, 44, 44, 46, 47, 46, 45, 45, 47, 47, 48, 51, 51,
			37, 39, 40, 43, 47, 47, 47, 47, 47, 45, 45, 46, 47, 48, 50, 50,
			37, 39, 40, 43, 47, 47, 47, 47, 47, 45, 45, 46, 47, 48, 50, 50,
			41, 42, 42, 44, 47, 47, 49, 49, 49, 48, 48, 49, 50, 51, 52, 52,
			42, 42, 43, 44, 47, 47, 49, 50, 50, 49, 49, 50, 50, 51, 53, 53,
			44, 44, 44, 45, 47, 47, 50, 51, 51, 51, 51, 52, 52, 53, 54, 54,
			49, 47, 46, 47, 48, 48, 52, 53, 53, 53, 53, 54, 54, 55, 57, 57,
			49, 47, 46, 47, 48, 48, 52, 53, 53, 53, 53, 54, 54, 55, 57, 57,
			48, 46, 46, 46, 47, 47, 51, 53, 54, 55, 55, 56, 57, 58, 59, 59,
			48, 46, 46, 46, 47, 47, 51, 53, 54, 56, 56, 57, 57, 58, 60, 60,
			48, 46, 45, 46, 46, 46, 51, 53, 54, 57, 57, 58, 59, 60, 61, 61,
			49, 46, 45, 45, 46, 46, 51, 53, 55, 58, 58, 61, 61, 62, 64, 64,
			49, 46, 45, 45, 46, 46, 51, 53, 55, 58, 58, 61, 61, 62, 64, 64,
			50, 47, 46, 46, 46, 46, 52, 54, 56, 59, 59, 62, 63, 64, 66, 66,
			50, 47, 46, 46, 46, 46, 52, 54, 56, 59, 59, 63, 64, 65, 67, 67,
			51, 48, 47, 47, 47, 47, 52, 54, 56, 60, 60, 64, 65, 66, 68, 68,
			52, 48, 48, 47, 47, 47, 53, 54, 57, 61, 61, 65, 66, 68, 71, 71,
			52, 48, 48, 47, 47, 47, 53, 54, 57, 61, 61, 65, 66, 68, 71, 71,
			54, 50, 49, 49, 48, 48, 54, 55, 58, 62, 62, 67, 68, 70, 73, 73,
			54, 51, 50, 49, 49, 49, 54, 55, 58, 62, 62, 67, 68, 70, 73, 73,
			55, 51, 51, 50, 49, 49, 54, 56, 58, 63, 63, 68, 69, 71, 74, 74,
			57, 53, 52, 51, 50, 50, 55, 56, 59, 64, 64, 69, 70, 73, 76, 76,
			57, 53, 52, 51, 50, 50, 55, 56, 59, 64, 64, 69, 70, 73, 76, 76,
			59, 55, 54, 53, 52, 52, 57, 58, 61, 65, 65, 70, 72, 74, 78, 78,
		},
	},
	{
		{ // level 8, luma
			32, 31, 31, 31, 31, 32, 31, 31, 32, 32, 31, 32, 32, 32, 32, 31,
			32, 32, 32, 32, 32, 31, 32, 32, 32, 32, 32, 32, 31, 32, 32, 32,
			32, 32, 32, 33, 31, 32, 32, 32, 32, 32, 32, 33, 33, 32, 32, 32,
			32, 32, 32, 33, 33, 33, 34, 32, 32, 32, 32, 32, 32, 33, 34, 34,
			34, 35, 32, 32, 32, 32, 32, 32, 33, 34, 34, 34, 35, 35, 32, 33,
			33, 33, 33, 33, 33, 34, 34, 35, 36, 36, 36, 34, 34, 34, 34, 33,
			33, 34, 35, 35, 35, 37, 37, 38, 39, 34, 34, 34, 34, 33, 33, 34,
			35, 35, 35, 37, 37, 38, 39, 39, 35, 34, 34, 34, 34, 34, 34, 35,
			36, 36, 37, 37, 39, 41, 41, 43, 36, 35, 35, 35, 34, 34, 35, 36,
			36, 37, 38, 38, 40, 42, 42, 45, 48, 36, 35, 35, 35, 34, 34, 35,
			36, 36, 37, 38, 38, 40, 42, 42, 45, 48, 48, 38, 37, 37, 37, 36,
			36, 36, 38, 38, 38, 39, 39, 41, 44, 44, 47, 50, 50, 51, 39, 39,
			38, 38, 37, 37, 38, 39, 39, 39, 40, 40, 42, 45, 45, 47, 50, 50,
			52, 54, 39, 39, 38, 38, 37, 37, 38, 39, 39, 39, 40, 40, 42, 45,
			45, 47, 50, 50, 52, 54, 54, 42, 41, 41, 41, 40, 40, 40, 41, 41,
			41, 42, 42, 44, 47, 47, 49, 53, 53, 55, 56, 56, 60, 44, 43, 42,
			42, 41, 41, 41, 42, 42, 42, 42, 42, 44, 47, 47, 50, 54, 54, 56,
			58, 58, 61, 63, 44, 43, 43, 42, 41, 41, 41, 42, 42, 42, 43, 43,
			45, 48, 48, 51, 54, 54, 56, 58, 58, 62, 64, 64, 47, 46, 45, 45,
			44, 44, 44, 44, 45, 45, 45, 45, 47, 50, 50, 53, 56, 56, 58, 60,
			60, 64, 66, 66, 69, 48, 47, 46, 46, 45, 44, 45, 45, 45, 45, 46,
			46, 47, 51, 51, 53, 57, 57, 59, 61, 61, 65, 67, 67, 70, 71, 49,
			48, 47, 47, 46, 45, 45, 46, 46, 46, 46, 46, 48, 51, 51, 54, 57,
			57, 60, 62, 62, 66, 68, 68, 71, 72, 73, 53, 51, 51, 51, 49, 49,
			49, 49, 49, 49, 49, 49, 51, 54, 54, 57, 59, 59, 62, 64, 64, 69,
			71, 71, 74, 75, 77, 81, 54, 52, 51, 51, 50, 49, 49, 50, 50, 49,
			49, 49, 51, 54, 54, 57, 60, 60, 63, 65, 65, 69, 71, 72, 75, 76,
			77, 81, 82, 55, 53, 53, 52, 51, 50, 50, 51, 51, 51, 50, 50, 52,
			55, 55, 58, 61, 61, 64, 66, 66, 70, 72, 73, 76, 77, 78, 83, 83,
			85, 59, 57, 56, 56, 54, 54, 54, 54, 54, 54, 53, 53, 55, 58, 58,
			61, 64, 64, 67, 69, 69, 73, 75, 76, 79, 80, 81, 86, 87, 88, 92,
			59, 57, 56, 56, 54, 54, 54, 54, 54, 54, 53, 53, 55, 58, 58, 61,
			64, 64, 67, 69, 69, 73, 75, 76, 79, 80, 81, 86, 87, 88, 92, 92,
			32, 31, 31, 31, 32, 32, 32, 35, 36, 38, 44, 44, 47, 53, 53, 59,
			31, 32, 32, 32, 32, 32, 33, 35, 35, 37, 43, 43, 46, 52, 52, 57,
			31, 32, 32, 32, 32, 32, 33, 35, 35, 37, 42, 42, 45, 51, 51, 56,
			31, 32, 32, 32, 32, 32, 33, 35, 35, 37, 42, 42, 45, 51, 51, 56,
			31, 32, 32, 32, 32, 32, 33, 34, 35, 36, 41, 41, 44, 49, 49, 54,
			31, 32, 32, 32, 32, 33, 33, 34, 34, 36, 41, 41, 44, 49, 49, 54,
			31, 32, 32, 32, 33, 33, 33, 35, 35, 36, 41, 41, 44, 49, 49, 54,
			32, 32, 32, 32, 33, 34, 34, 36, 36, 38, 42, 42, 45, 49, 49, 54,
			32, 32, 32, 33, 34, 34, 34, 36, 36, 38, 42, 42, 45, 50, 50, 54,
			32, 32, 32, 33, 34, 34, 35, 37, 37, 38, 42, 42, 45, 49, 49, 54,
			32, 32, 33, 33, 35, 35, 36, 38, 38, 39, 42, 42, 45, 49, 49, 53,
			32, 32, 33, 33, 35, 35, 36, 38, 38, 39, 42, 42, 45, 49, 49, 53,
			32, 33, 33, 33, 35, 36, 36, 39, 40, 41, 44, 44, 47, 51, 51, 55,
			34, 34, 34, 34, 36, 37, 38, 42, 42, 44, 48, 48, 50, 54, 54, 58,
			34, 34, 34, 34, 36, 37, 38, 42, 42, 44, 48, 48, 50, 54, 54, 58,
			35, 34, 34, 34, 37, 37, 39, 44, 45, 46, 50, 50, 53, 57, 57, 61,
			36, 35, 34, 35, 37, 38, 40, 47, 48, 49, 54, 54, 56, 60, 60, 64,
			36, 35, 34, 35, 37, 38, 40, 47, 48, 49, 54, 54, 56, 60, 60, 64,
			38, 37, 36, 37, 39, 40, 41, 48, 49, 51, 56, 56, 58, 63, 63, 67,
			39, 38, 37, 38, 40, 40, 42, 49, 50, 52, 58, 58, 60, 65, 65, 69,
			39, 38, 37, 38, 40, 40, 42, 49, 50, 52, 58, 58, 60, 65, 65, 69,
			42, 40, 40, 40, 42, 42, 44, 51, 52, 55, 61, 61, 64, 69, 69, 73,
			44, 42, 41, 41, 42, 43, 45, 52, 53, 56, 63, 63, 66, 71, 71, 75,
			44, 42, 41, 41, 43, 43, 45, 52, 54, 56, 63, 63, 66, 72, 72, 76,
			47, 45, 44, 44, 45, 45, 47, 54, 56, 58, 66, 66, 69, 75, 75, 79,
			48, 46, 45, 45, 46, 46, 48, 55, 56, 59, 67, 67, 70, 76, 76, 80,
			49, 47, 46, 46, 47, 47, 48, 56, 57, 60, 67, 67, 71, 77, 77, 81,
			53, 50, 49, 49, 49, 49, 51, 58, 59, 62, 71, 71, 74, 81, 81, 86,
			53, 51, 49, 49, 50, 50, 51, 59, 60, 63, 71, 71, 75, 82, 82, 87,
			55, 52, 51, 51, 51, 51, 53, 60, 61, 64, 72, 72, 76, 83, 83, 88,
			58, 55, 54, 54, 54, 54, 55, 62, 63, 67, 75, 75, 79, 87, 87, 92,
			58, 55, 54, 54, 54, 54, 55, 62, 63, 67, 75, 75, 79, 87, 87, 92,
		},
		{ // level 8, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 31, 31, 31, 31, 30,
			31, 31, 31, 31, 32, 31, 31, 32, 32, 32, 32, 33, 33, 34, 34, 34,
			35, 35, 35, 38, 33, 34, 34, 34, 35, 35, 36, 38, 39, 34, 35, 35,
			36, 36, 36, 37, 40, 40, 41, 36, 38, 38, 38, 39, 40, 40, 43, 43,
			44, 47, 36, 38, 38, 38, 39, 40, 40, 43, 43, 44, 47, 47, 38, 39,
			40, 40, 41, 41, 41, 43, 44, 45, 47, 47, 47, 41, 42, 42, 42, 42,
			42, 43, 44, 45, 45, 47, 47, 48, 48, 41, 42, 42, 42, 42, 42, 43,
			44, 45, 45, 47, 47, 48, 48, 48, 45, 45, 45, 45, 44, 44, 44, 46,
			46, 46, 47, 47, 48, 49, 49, 50, 49, 48, 47, 47, 46, 46, 46, 47,
			47, 47, 48, 48, 49, 50, 50, 51, 53, 49, 48, 47, 47, 46, 46, 46,
			47, 47, 47, 48, 48, 49, 50, 50, 51, 53, 53, 49, 47, 47, 47, 46,
			46, 46, 46, 46, 47, 47, 47, 48, 50, 50, 51, 53, 53, 53, 48, 47,
			47, 47, 46, 45, 45, 46, 46, 46, 46, 46, 48, 49, 49, 51, 53, 53,
			54, 54, 48, 47, 47, 47, 46, 45, 45, 46, 46, 46, 46, 46, 48, 49,
			49, 51, 53, 53, 54, 54, 54, 49, 47, 47, 47, 45, 45, 45, 45, 45,
			45, 45, 45, 47, 49, 49, 51, 53, 53, 54, 55, 55, 57, 49, 47, 47,
			46, 45, 45, 45, 45, 45, 45, 45, 45, 47, 49, 49, 51, 53, 53, 55,
			55, 55, 57, 58, 49, 47, 47, 47, 45, 45, 45, 45, 45, 45, 45, 45,
			47, 49, 49, 51, 53, 53, 55, 56, 56, 58, 58, 59, 50, 49, 48, 48,
			46, 46, 46, 46, 46, 46, 46, 46, 47, 50, 50, 52, 54, 54, 55, 56,
			56, 58, 59, 59, 61, 50, 49, 48, 48, 47, 46, 46, 46, 46, 46, 46,
			46, 47, 50, 50, 52, 54, 54, 55, 56, 56, 59, 60, 60, 61, 61, 51,
			49, 48, 48, 47, 46, 46, 47, 47, 46, 46, 46, 47, 50, 50, 52, 54,
			54, 55, 56, 56, 59, 60, 60, 61, 62, 62, 52, 50, 49, 49, 48, 47,
			47, 47, 47, 47, 46, 46, 48, 50, 50, 52, 54, 54, 56, 57, 57, 60,
			61, 61, 63, 63, 64, 66, 52, 50, 50, 49, 48, 47, 47, 47, 47, 47,
			47, 47, 48, 50, 50, 52, 54, 54, 56, 57, 57, 60, 61, 61, 63, 63,
			64, 66, 66, 53, 51, 50, 50, 48, 48, 48, 48, 48, 48, 47, 47, 48,
			51, 51, 52, 54, 54, 56, 58, 58, 60, 61, 62, 63, 64, 64, 67, 67,
			68, 54, 53, 52, 52, 50, 49, 49, 49, 49, 49, 48, 48, 49, 52, 52,
			53, 55, 55, 57, 58, 58, 61, 62, 63, 64, 65, 66, 68, 68, 69, 71,
			54, 53, 52, 52, 50, 49, 49, 49, 49, 49, 48, 48, 49, 52, 52, 53,
			55, 55, 57, 58, 58, 61, 62, 63, 64, 65, 66, 68, 68, 69, 71, 71,
			32, 31, 31, 31, 35, 37, 38, 47, 48, 48, 49, 49, 50, 52, 52, 54,
			31, 31, 31, 32, 36, 38, 39, 46, 47, 47, 48, 48, 49, 50, 50, 53,
			31, 31, 31, 32, 37, 38, 40, 46, 47, 47, 47, 47, 48, 50, 50, 52,
			31, 31, 31, 32, 37, 38, 40, 46, 47, 47, 47, 47, 48, 50, 50, 52,
			30, 31, 32, 32, 38, 39, 40, 45, 46, 46, 45, 45, 46, 48, 48, 50,
			30, 31, 32, 33, 38, 40, 41, 45, 46, 46, 45, 45, 46, 48, 48, 50,
			31, 32, 33, 33, 38, 40, 41, 45, 46, 46, 45, 45, 46, 48, 48, 50,
			33, 35, 35, 36, 41, 43, 43, 46, 47, 46, 45, 45, 46, 47, 47, 49,
			33, 35, 36, 36, 41, 43, 44, 46, 47, 46, 46, 46, 46, 47, 47, 49,
			34, 36, 37, 37, 42, 44, 45, 47, 47, 47, 45, 45, 46, 47, 47, 49,
			37, 39, 40, 41, 45, 47, 47, 47, 47, 47, 45, 45, 46, 47, 47, 48,
			37, 39, 40, 41, 45, 47, 47, 47, 47, 47, 45, 45, 46, 47, 47, 48,
			39, 40, 41, 42, 46, 47, 47, 48, 48, 48, 47, 47, 47, 48, 48, 50,
			42, 42, 43, 43, 46, 47, 48, 50, 50, 50, 49, 49, 50, 50, 50, 52,
			42, 42, 43, 43, 46, 47, 48, 50, 50, 50, 49, 49, 50, 50, 50, 52,
			45, 45, 44, 45, 47, 47, 48, 51, 51, 51, 51, 51, 52, 52, 52, 54,
			49, 47, 46, 47, 48, 48, 49, 52, 53, 53, 53, 53, 54, 54, 54, 55,
			49, 47, 46, 47, 48, 48, 49, 52, 53, 53, 53, 53, 54, 54, 54, 55,
			48, 47, 46, 46, 47, 47, 48, 52, 53, 53, 55, 55, 55, 56, 56, 57,
			48, 46, 46, 46, 46, 47, 48, 52, 53, 54, 56, 56, 56, 57, 57, 59,
			48, 46, 46, 46, 46, 47, 48, 52, 53, 54, 56, 56, 56, 57, 57, 59,
			49, 46, 45, 45, 46, 46, 47, 52, 53, 54, 57, 57, 58, 60, 60, 61,
			49, 46, 45, 45, 45, 46, 47, 52, 53, 55, 58, 58, 59, 61, 61, 62,
			49, 46, 45, 45, 46, 46, 47, 52, 53, 55, 58, 58, 60, 61, 61, 63,
			50, 47, 46, 46, 46, 46, 48, 53, 54, 55, 59, 59, 61, 63, 63, 65,
			50, 48, 46, 46, 46, 46, 48, 53, 54, 55, 59, 59, 61, 64, 64, 65,
			51, 48, 47, 47, 47, 47, 48, 53, 54, 55, 60, 60, 61, 64, 64, 66,
			52, 49, 48, 48, 47, 47, 48, 53, 54, 56, 61, 61, 63, 66, 66, 68,
			52, 49, 48, 48, 47, 47, 48, 53, 54, 56, 61, 61, 63, 66, 66, 68,
			53, 50, 48, 48, 48, 48, 49, 54, 54, 56, 61, 61, 63, 67, 67, 69,
			54, 51, 50, 50, 49, 49, 50, 55, 55, 57, 62, 62, 65, 68, 68, 71,
			54, 51, 50, 50, 49, 49, 50, 55, 55, 57, 62, 62, 65, 68, 68, 71,
		},
	},
	{
		{ // level 9, luma
			32, 31, 31, 31, 31, 32, 31, 31, 32, 32, 31, 31, 32, 32, 32, 31,
			31, 32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 31, 32, 32, 32,
			32, 32, 32, 32, 31, 32, 32, 32, 32, 32, 32, 32, 33, 31, 32, 32,
			32, 32, 32, 32, 32, 33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 33,
			33, 33, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 32, 32,
			32, 32, 32, 32, 32, 33, 33, 34, 34, 35, 35, 32, 32, 32, 32, 32,
			32, 32, 33, 33, 34, 34, 35, 35, 35, 32, 33, 33, 33, 33, 33, 33,
			33, 34, 34, 34, 35, 36, 36, 36, 34, 34, 34, 34, 34, 33, 33, 34,
			35, 35, 35, 36, 37, 37, 38, 39, 34, 34, 34, 34, 34, 33, 33, 34,
			35, 35, 35, 36, 37, 37, 38, 39, 39, 34, 34, 34, 34, 34, 34, 34,
			34, 35, 35, 35, 36, 37, 37, 38, 40, 40, 41, 35, 35, 35, 35, 34,
			34, 34, 34, 36, 36, 36, 37, 38, 38, 39, 42, 42, 43, 46, 36, 35,
			35, 35, 35, 34, 34, 35, 36, 36, 36, 37, 38, 38, 40, 42, 42, 44,
			47, 48, 36, 35, 35, 35, 35, 34, 34, 35, 36, 36, 36, 37, 38, 38,
			40, 42, 42, 44, 47, 48, 48, 38, 37, 37, 37, 36, 36, 36, 36, 37,
			38, 38, 39, 39, 39, 41, 44, 44, 45, 48, 50, 50, 51, 39, 39, 38,
			38, 38, 37, 37, 38, 39, 39, 39, 40, 40, 40, 42, 45, 45, 46, 49,
			50, 50, 52, 54, 39, 39, 38, 38, 38, 37, 37, 38, 39, 39, 39, 40,
			40, 40, 42, 45, 45, 46, 49, 50, 50, 52, 54, 54, 41, 40, 40, 40,
			39, 38, 38, 39, 40, 40, 40, 41, 41, 41, 43, 46, 46, 47, 50, 52,
			52, 54, 55, 55, 57, 44, 43, 42, 42, 42, 41, 41, 41, 42, 42, 42,
			42, 42, 42, 44, 47, 47, 49, 52, 54, 54, 56, 58, 58, 60, 63, 44,
			43, 42, 42, 42, 41, 41, 41, 42, 42, 42, 42, 42, 42, 44, 47, 47,
			49, 52, 54, 54, 56, 58, 58, 60, 63, 63, 45, 44, 43, 43, 42, 41,
			41, 42, 42, 42, 42, 43, 43, 43, 45, 48, 48, 49, 53, 54, 54, 57,
			58, 58, 60, 64, 64, 65, 47, 46, 45, 45, 45, 44, 44, 44, 44, 45,
			45, 45, 45, 45, 47, 50, 50, 51, 55, 56, 56, 58, 60, 60, 62, 66,
			66, 67, 69, 48, 47, 46, 46, 45, 44, 44, 45, 45, 45, 45, 45, 46,
			46, 47, 51, 51, 52, 55, 57, 57, 59, 61, 61, 63, 67, 67, 68, 70,
			71, 48, 47, 46, 46, 45, 44, 44, 45, 45, 45, 45, 45, 46, 46, 47,
			51, 51, 52, 55, 57, 57, 59, 61, 61, 63, 67, 67, 68, 70, 71, 71,
			51, 50, 49, 49, 48, 47, 47, 47, 48, 48, 48, 48, 48, 48, 50, 53,
			53, 54, 57, 58, 58, 61, 63, 63, 66, 69, 69, 70, 73, 74, 74, 77,
			32, 31, 31, 31, 31, 32, 32, 32, 35, 36, 36, 40, 44, 44, 47, 53,
			31, 31, 32, 32, 32, 32, 32, 33, 35, 35, 35, 39, 43, 43, 46, 52,
			31, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 39, 42, 42, 45, 51,
			31, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 39, 42, 42, 45, 51,
			31, 32, 32, 32, 32, 32, 32, 33, 34, 35, 35, 39, 41, 41, 45, 50,
			31, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 38, 41, 41, 44, 49,
			31, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 38, 41, 41, 44, 49,
			31, 32, 32, 32, 32, 33, 33, 33, 34, 35, 35, 38, 41, 41, 44, 49,
			31, 32, 32, 32, 33, 34, 34, 34, 35, 36, 36, 39, 42, 42, 44, 49,
			32, 32, 32, 32, 33, 34, 34, 34, 36, 36, 36, 39, 42, 42, 45, 50,
			32, 32, 32, 32, 33, 34, 34, 34, 36, 36, 36, 39, 42, 42, 45, 50,
			32, 32, 32, 32, 33, 35, 35, 35, 37, 37, 37, 40, 42, 42, 45, 49,
			32, 32, 33, 33, 34, 35, 35, 36, 37, 38, 38, 41, 42, 42, 45, 49,
			32, 32, 33, 33, 34, 35, 35, 36, 37, 38, 38, 41, 42, 42, 45, 49,
			32, 33, 33, 33, 34, 36, 36, 36, 39, 40, 40, 42, 44, 44, 47, 51,
			34, 34, 34, 34, 35, 37, 37, 38, 41, 42, 42, 45, 48, 48, 50, 54,
			34, 34, 34, 34, 35, 37, 37, 38, 41, 42, 42, 45, 48, 48, 50, 54,
			34, 34, 34, 34, 35, 37, 37, 38, 42, 43, 43, 46, 49, 49, 51, 55,
			35, 35, 34, 34, 36, 38, 38, 39, 45, 47, 47, 50, 52, 52, 55, 59,
			36, 35, 34, 34, 36, 38, 38, 40, 46, 48, 48, 51, 54, 54, 56, 60,
			36, 35, 34, 34, 36, 38, 38, 40, 46, 48, 48, 51, 54, 54, 56, 60,
			38, 37, 36, 36, 37, 40, 40, 41, 47, 49, 49, 53, 56, 56, 58, 63,
			39, 38, 37, 37, 39, 40, 40, 42, 48, 50, 50, 54, 58, 58, 60, 65,
			39, 38, 37, 37, 39, 40, 40, 42, 48, 50, 50, 54, 58, 58, 60, 65,
			41, 40, 39, 39, 40, 41, 41, 43, 49, 51, 51, 56, 60, 60, 62, 67,
			44, 42, 41, 41, 42, 43, 43, 45, 51, 53, 53, 59, 63, 63, 66, 71,
			44, 42, 41, 41, 42, 43, 43, 45, 51, 53, 53, 59, 63, 63, 66, 71,
			44, 43, 42, 42, 42, 43, 43, 45, 51, 54, 54, 59, 64, 64, 67, 72,
			47, 45, 44, 44, 44, 45, 45, 47, 53, 56, 56, 61, 66, 66, 69, 75,
			48, 46, 45, 45, 45, 46, 46, 48, 54, 56, 56, 62, 67, 67, 70, 76,
			48, 46, 45, 45, 45, 46, 46, 48, 54, 56, 56, 62, 67, 67, 70, 76,
			51, 49, 47, 47, 48, 48, 48, 50, 56, 58, 58, 64, 69, 69, 73, 79,
		},
		{ // level 9, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30,
			31, 31, 31, 31, 32, 30, 31, 31, 31, 31, 32, 32, 31, 31, 32, 32,
			32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35, 37, 33, 34, 34,
			34, 35, 35, 35, 36, 38, 39, 33, 34, 34, 34, 35, 35, 35, 36, 38,
			39, 39, 35, 36, 37, 37, 37, 38, 38, 38, 41, 41, 41, 44, 36, 37,
			38, 38, 39, 40, 40, 40, 42, 43, 43, 46, 47, 36, 37, 38, 38, 39,
			40, 40, 40, 42, 43, 43, 46, 47, 47, 38, 39, 40, 40, 40, 41, 41,
			41, 43, 44, 44, 46, 47, 47, 47, 41, 42, 42, 42, 42, 42, 42, 43,
			44, 45, 45, 46, 47, 47, 48, 48, 41, 42, 42, 42, 42, 42, 42, 43,
			44, 45, 45, 46, 47, 47, 48, 48, 48, 43, 43, 43, 43, 43, 43, 43,
			43, 45, 45, 45, 46, 47, 47, 48, 49, 49, 49, 47, 47, 46, 46, 46,
			45, 45, 46, 46, 47, 47, 47, 47, 47, 48, 50, 50, 50, 52, 49, 48,
			47, 47, 47, 46, 46, 46, 47, 47, 47, 47, 48, 48, 49, 50, 50, 51,
			52, 53, 49, 48, 47, 47, 47, 46, 46, 46, 47, 47, 47, 47, 48, 48,
			49, 50, 50, 51, 52, 53, 53, 49, 48, 47, 47, 46, 46, 46, 46, 46,
			46, 46, 47, 47, 47, 48, 50, 50, 50, 52, 53, 53, 53, 48, 47, 47,
			47, 46, 45, 45, 45, 46, 46, 46, 46, 46, 46, 48, 49, 49, 50, 52,
			53, 53, 54, 54, 48, 47, 47, 47, 46, 45, 45, 45, 46, 46, 46, 46,
			46, 46, 48, 49, 49, 50, 52, 53, 53, 54, 54, 54, 49, 47, 47, 47,
			46, 45, 45, 45, 46, 46, 46, 46, 46, 46, 47, 49, 49, 50, 52, 53,
			53, 54, 55, 55, 55, 49, 47, 47, 47, 46, 45, 45, 45, 45, 45, 45,
			45, 45, 45, 47, 49, 49, 50, 52, 53, 53, 55, 55, 55, 57, 58, 49,
			47, 47, 47, 46, 45, 45, 45, 45, 45, 45, 45, 45, 45, 47, 49, 49,
			50, 52, 53, 53, 55, 55, 55, 57, 58, 58, 49, 48, 47, 47, 46, 45,
			45, 45, 45, 45, 45, 45, 45, 45, 47, 49, 49, 50, 52, 53, 53, 55,
			56, 56, 57, 59, 59, 59, 50, 49, 48, 48, 47, 46, 46, 46, 46, 46,
			46, 46, 46, 46, 47, 50, 50, 50, 53, 54, 54, 55, 56, 56, 57, 59,
			59, 60, 61, 50, 49, 48, 48, 47, 46, 46, 46, 46, 46, 46, 46, 46,
			46, 47, 50, 50, 50, 53, 54, 54, 55, 56, 56, 58, 60, 60, 60, 61,
			61, 50, 49, 48, 48, 47, 46, 46, 46, 46, 46, 46, 46, 46, 46, 47,
			50, 50, 50, 53, 54, 54, 55, 56, 56, 58, 60, 60, 60, 61, 61, 61,
			51, 50, 49, 49, 48, 47, 47, 47, 47, 47, 47, 47, 46, 46, 48, 50,
			50, 51, 53, 54, 54, 56, 57, 57, 58, 60, 60, 61, 62, 63, 63, 64,
			32, 31, 31, 31, 33, 37, 37, 38, 45, 48, 48, 49, 49, 49, 50, 52,
			31, 31, 31, 31, 33, 38, 38, 39, 45, 47, 47, 48, 48, 48, 49, 51,
			31, 31, 31, 31, 34, 38, 38, 40, 45, 47, 47, 47, 47, 47, 48, 50,
			31, 31, 31, 31, 34, 38, 38, 40, 45, 47, 47, 47, 47, 47, 48, 50,
			31, 31, 32, 32, 34, 39, 39, 40, 45, 46, 46, 46, 46, 46, 47, 49,
			30, 31, 32, 32, 35, 40, 40, 41, 44, 46, 46, 45, 45, 45, 46, 48,
			30, 31, 32, 32, 35, 40, 40, 41, 44, 46, 46, 45, 45, 45, 46, 48,
			31, 32, 33, 33, 35, 40, 40, 41, 45, 46, 46, 45, 45, 45, 46, 48,
			33, 34, 35, 35, 37, 42, 42, 43, 46, 47, 47, 46, 45, 45, 46, 47,
			33, 35, 36, 36, 38, 43, 43, 44, 46, 47, 47, 46, 46, 46, 46, 47,
			33, 35, 36, 36, 38, 43, 43, 44, 46, 47, 47, 46, 46, 46, 46, 47,
			35, 37, 38, 38, 41, 45, 45, 46, 47, 47, 47, 46, 45, 45, 46, 47,
			37, 39, 40, 40, 43, 47, 47, 47, 47, 47, 47, 46, 45, 45, 46, 47,
			37, 39, 40, 40, 43, 47, 47, 47, 47, 47, 47, 46, 45, 45, 46, 47,
			39, 40, 41, 41, 43, 47, 47, 47, 48, 48, 48, 47, 47, 47, 47, 48,
			42, 42, 43, 43, 44, 47, 47, 48, 49, 50, 50, 49, 49, 49, 50, 50,
			42, 42, 43, 43, 44, 47, 47, 48, 49, 50, 50, 49, 49, 49, 50, 50,
			43, 43, 43, 43, 45, 47, 47, 48, 50, 50, 50, 50, 50, 50, 50, 51,
			47, 46, 46, 46, 46, 48, 48, 48, 51, 52, 52, 52, 53, 53, 53, 53,
			49, 47, 46, 46, 47, 48, 48, 49, 52, 53, 53, 53, 53, 53, 54, 54,
			49, 47, 46, 46, 47, 48, 48, 49, 52, 53, 53, 53, 53, 53, 54, 54,
			48, 47, 46, 46, 46, 47, 47, 48, 52, 53, 53, 54, 55, 55, 55, 56,
			48, 47, 46, 46, 46, 47, 47, 48, 51, 53, 53, 54, 56, 56, 56, 57,
			48, 47, 46, 46, 46, 47, 47, 48, 51, 53, 53, 54, 56, 56, 56, 57,
			48, 47, 45, 45, 46, 46, 46, 47, 51, 53, 53, 55, 57, 57, 57, 59,
			49, 46, 45, 45, 45, 46, 46, 47, 51, 53, 53, 56, 58, 58, 59, 61,
			49, 46, 45, 45, 45, 46, 46, 47, 51, 53, 53, 56, 58, 58, 59, 61,
			49, 47, 45, 45, 45, 46, 46, 47, 52, 53, 53, 56, 58, 58, 60, 62,
			50, 48, 46, 46, 46, 46, 46, 48, 52, 54, 54, 57, 59, 59, 61, 63,
			50, 48, 46, 46, 46, 46, 46, 48, 52, 54, 54, 57, 59, 59, 61, 64,
			50, 48, 46, 46, 46, 46, 46, 48, 52, 54, 54, 57, 59, 59, 61, 64,
			51, 49, 47, 47, 47, 47, 47, 48, 52, 54, 54, 58, 60, 60, 62, 65,
		},
	},
	{
		{ // level 10, luma
			32, 31, 31, 31, 31, 32, 31, 31, 32, 32, 31, 31, 32, 32, 32, 31,
			31, 32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 31, 31, 32, 32,
			32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 32, 32, 31, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 31, 32, 32, 32, 32, 32, 32, 32, 32,
			33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 33, 33, 33, 33, 34, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 33, 34, 34, 34, 34, 35, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 33, 34, 34, 34, 34, 35, 35, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 33, 34, 34, 34, 34, 35, 35, 35, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 34, 34, 34, 34, 35, 36, 36, 36, 37, 34, 34, 34, 34, 34,
			34, 33, 33, 33, 34, 35, 35, 35, 36, 37, 37, 37, 38, 39, 34, 34,
			34, 34, 34, 34, 33, 33, 33, 34, 35, 35, 35, 36, 37, 37, 37, 38,
			39, 39, 34, 34, 34, 34, 34, 34, 33, 33, 33, 34, 35, 35, 35, 36,
			37, 37, 37, 38, 39, 39, 39, 35, 34, 34, 34, 34, 34, 34, 34, 34,
			35, 36, 36, 36, 36, 37, 37, 37, 39, 41, 41, 41, 43, 36, 35, 35,
			35, 35, 35, 34, 34, 34, 35, 36, 36, 36, 37, 38, 38, 38, 40, 42,
			42, 42, 45, 48, 36, 35, 35, 35, 35, 35, 34, 34, 34, 35, 36, 36,
			36, 37, 38, 38, 38, 40, 42, 42, 42, 45, 48, 48, 36, 35, 35, 35,
			35, 35, 34, 34, 34, 35, 36, 36, 36, 37, 38, 38, 38, 40, 42, 42,
			42, 45, 48, 48, 48, 37, 37, 37, 37, 37, 36, 36, 36, 36, 37, 38,
			38, 38, 38, 39, 39, 39, 41, 44, 44, 44, 46, 49, 49, 49, 51, 39,
			39, 38, 38, 38, 38, 37, 37, 37, 38, 39, 39, 39, 40, 40, 40, 40,
			42, 45, 45, 45, 47, 50, 50, 50, 52, 54, 39, 39, 38, 38, 38, 38,
			37, 37, 37, 38, 39, 39, 39, 40, 40, 40, 40, 42, 45, 45, 45, 47,
			50, 50, 50, 52, 54, 54, 39, 39, 38, 38, 38, 38, 37, 37, 37, 38,
			39, 39, 39, 40, 40, 40, 40, 42, 45, 45, 45, 47, 50, 50, 50, 52,
			54, 54, 54, 41, 41, 40, 40, 40, 39, 39, 39, 39, 40, 40, 40, 40,
			41, 41, 41, 41, 44, 46, 46, 46, 49, 52, 52, 52, 54, 56, 56, 56,
			58, 44, 43, 42, 42, 42, 41, 41, 41, 41, 41, 42, 42, 42, 42, 42,
			42, 42, 45, 47, 47, 47, 50, 54, 54, 54, 56, 58, 58, 58, 60, 63,
			44, 43, 42, 42, 42, 41, 41, 41, 41, 41, 42, 42, 42, 42, 42, 42,
			42, 45, 47, 47, 47, 50, 54, 54, 54, 56, 58, 58, 58, 60, 63, 63,
			32, 31, 31, 31, 31, 32, 32, 32, 32, 34, 36, 36, 36, 39, 44, 44,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 34, 35, 35, 35, 39, 43, 43,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 34, 35, 35, 35, 38, 42, 42,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 34, 35, 35, 35, 38, 42, 42,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 34, 35, 35, 35, 38, 42, 42,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 34, 35, 35, 35, 38, 41, 41,
			31, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 37, 41, 41,
			31, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 37, 41, 41,
			31, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 37, 41, 41,
			31, 32, 32, 32, 32, 33, 33, 33, 33, 34, 35, 35, 35, 38, 41, 41,
			32, 32, 32, 32, 32, 33, 34, 34, 34, 35, 36, 36, 36, 39, 42, 42,
			32, 32, 32, 32, 32, 33, 34, 34, 34, 35, 36, 36, 36, 39, 42, 42,
			32, 32, 32, 32, 32, 33, 34, 34, 34, 35, 36, 36, 36, 39, 42, 42,
			32, 32, 32, 32, 32, 33, 34, 34, 34, 36, 37, 37, 37, 40, 42, 42,
			32, 32, 33, 33, 33, 34, 35, 35, 35, 37, 38, 38, 38, 40, 42, 42,
			32, 32, 33, 33, 33, 34, 35, 35, 35, 37, 38, 38, 38, 40, 42, 42,
			32, 32, 33, 33, 33, 34, 35, 35, 35, 37, 38, 38, 38, 40, 42, 42,
			33, 33, 33, 33, 33, 34, 36, 36, 36, 38, 40, 40, 40, 42, 45, 45,
			34, 34, 34, 34, 34, 35, 37, 37, 37, 39, 42, 42, 42, 45, 48, 48,
			34, 34, 34, 34, 34, 35, 37, 37, 37, 39, 42, 42, 42, 45, 48, 48,
			34, 34, 34, 34, 34, 35, 37, 37, 37, 39, 42, 42, 42, 45, 48, 48,
			35, 34, 34, 34, 34, 36, 37, 37, 37, 41, 45, 45, 45, 47, 50, 50,
			36, 35, 34, 34, 34, 36, 38, 38, 38, 43, 48, 48, 48, 51, 54, 54,
			36, 35, 34, 34, 34, 36, 38, 38, 38, 43, 48, 48, 48, 51, 54, 54,
			36, 35, 34, 34, 34, 36, 38, 38, 38, 43, 48, 48, 48, 51, 54, 54,
			37, 37, 36, 36, 36, 38, 39, 39, 39, 44, 49, 49, 49, 52, 56, 56,
			39, 38, 37, 37, 37, 39, 40, 40, 40, 45, 50, 50, 50, 54, 58, 58,
			39, 38, 37, 37, 37, 39, 40, 40, 40, 45, 50, 50, 50, 54, 58, 58,
			39, 38, 37, 37, 37, 39, 40, 40, 40, 45, 50, 50, 50, 54, 58, 58,
			41, 40, 39, 39, 39, 40, 42, 42, 42, 46, 52, 52, 52, 56, 60, 60,
			44, 42, 41, 41, 41, 42, 43, 43, 43, 48, 53, 53, 53, 58, 63, 63,
			44, 42, 41, 41, 41, 42, 43, 43, 43, 48, 53, 53, 53, 58, 63, 63,
		},
		{ // level 10, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 30, 31, 31, 31, 31, 31, 32, 30, 31, 31, 31,
			31, 31, 32, 32, 30, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 33,
			33, 33, 33, 33, 33, 33, 35, 33, 34, 34, 34, 34, 35, 35, 35, 35,
			37, 39, 33, 34, 34, 34, 34, 35, 35, 35, 35, 37, 39, 39, 33, 34,
			34, 34, 34, 35, 35, 35, 35, 37, 39, 39, 39, 35, 35, 36, 36, 36,
			37, 37, 37, 37, 39, 41, 41, 41, 43, 36, 37, 38, 38, 38, 39, 40,
			40, 40, 41, 43, 43, 43, 45, 47, 36, 37, 38, 38, 38, 39, 40, 40,
			40, 41, 43, 43, 43, 45, 47, 47, 36, 37, 38, 38, 38, 39, 40, 40,
			40, 41, 43, 43, 43, 45, 47, 47, 47, 39, 39, 40, 40, 40, 41, 41,
			41, 41, 42, 44, 44, 44, 45, 47, 47, 47, 47, 41, 42, 42, 42, 42,
			42, 42, 42, 42, 43, 45, 45, 45, 46, 47, 47, 47, 48, 48, 41, 42,
			42, 42, 42, 42, 42, 42, 42, 43, 45, 45, 45, 46, 47, 47, 47, 48,
			48, 48, 41, 42, 42, 42, 42, 42, 42, 42, 42, 43, 45, 45, 45, 46,
			47, 47, 47, 48, 48, 48, 48, 45, 45, 45, 45, 45, 44, 44, 44, 44,
			45, 46, 46, 46, 47, 47, 47, 47, 48, 49, 49, 49, 50, 49, 48, 47,
			47, 47, 47, 46, 46, 46, 47, 47, 47, 47, 47, 48, 48, 48, 49, 50,
			50, 50, 51, 53, 49, 48, 47, 47, 47, 47, 46, 46, 46, 47, 47, 47,
			47, 47, 48, 48, 48, 49, 50, 50, 50, 51, 53, 53, 49, 48, 47, 47,
			47, 47, 46, 46, 46, 47, 47, 47, 47, 47, 48, 48, 48, 49, 50, 50,
			50, 51, 53, 53, 53, 49, 48, 47, 47, 47, 46, 46, 46, 46, 46, 47,
			47, 47, 47, 47, 47, 47, 48, 50, 50, 50, 51, 53, 53, 53, 53, 48,
			48, 47, 47, 47, 46, 45, 45, 45, 46, 46, 46, 46, 46, 46, 46, 46,
			48, 49, 49, 49, 51, 53, 53, 53, 53, 54, 48, 48, 47, 47, 47, 46,
			45, 45, 45, 46, 46, 46, 46, 46, 46, 46, 46, 48, 49, 49, 49, 51,
			53, 53, 53, 53, 54, 54, 48, 48, 47, 47, 47, 46, 45, 45, 45, 46,
			46, 46, 46, 46, 46, 46, 46, 48, 49, 49, 49, 51, 53, 53, 53, 53,
			54, 54, 54, 49, 48, 47, 47, 47, 46, 45, 45, 45, 45, 46, 46, 46,
			46, 46, 46, 46, 47, 49, 49, 49, 51, 53, 53, 53, 54, 55, 55, 55,
			56, 49, 48, 47, 47, 47, 46, 45, 45, 45, 45, 45, 45, 45, 45, 45,
			45, 45, 47, 49, 49, 49, 51, 53, 53, 53, 54, 55, 55, 55, 57, 58,
			49, 48, 47, 47, 47, 46, 45, 45, 45, 45, 45, 45, 45, 45, 45, 45,
			45, 47, 49, 49, 49, 51, 53, 53, 53, 54, 55, 55, 55, 57, 58, 58,
			32, 31, 31, 31, 31, 33, 37, 37, 37, 42, 48, 48, 48, 48, 49, 49,
			31, 31, 31, 31, 31, 34, 37, 37, 37, 42, 47, 47, 47, 48, 48, 48,
			31, 31, 31, 31, 31, 34, 38, 38, 38, 42, 47, 47, 47, 47, 47, 47,
			31, 31, 31, 31, 31, 34, 38, 38, 38, 42, 47, 47, 47, 47, 47, 47,
			31, 31, 31, 31, 31, 34, 38, 38, 38, 42, 47, 47, 47, 47, 47, 47,
			31, 31, 32, 32, 32, 35, 39, 39, 39, 42, 46, 46, 46, 46, 46, 46,
			30, 31, 32, 32, 32, 35, 40, 40, 40, 42, 46, 46, 46, 45, 45, 45,
			30, 31, 32, 32, 32, 35, 40, 40, 40, 42, 46, 46, 46, 45, 45, 45,
			30, 31, 32, 32, 32, 35, 40, 40, 40, 42, 46, 46, 46, 45, 45, 45,
			32, 33, 34, 34, 34, 37, 41, 41, 41, 44, 46, 46, 46, 46, 45, 45,
			33, 34, 36, 36, 36, 39, 43, 43, 43, 45, 47, 47, 47, 46, 46, 46,
			33, 34, 36, 36, 36, 39, 43, 43, 43, 45, 47, 47, 47, 46, 46, 46,
			33, 34, 36, 36, 36, 39, 43, 43, 43, 45, 47, 47, 47, 46, 46, 46,
			35, 36, 38, 38, 38, 41, 45, 45, 45, 46, 47, 47, 47, 46, 45, 45,
			37, 38, 40, 40, 40, 43, 47, 47, 47, 47, 47, 47, 47, 46, 45, 45,
			37, 38, 40, 40, 40, 43, 47, 47, 47, 47, 47, 47, 47, 46, 45, 45,
			37, 38, 40, 40, 40, 43, 47, 47, 47, 47, 47, 47, 47, 46, 45, 45,
			39, 40, 41, 41, 41, 44, 47, 47, 47, 48, 49, 49, 49, 48, 47, 47,
			42, 42, 43, 43, 43, 45, 47, 47, 47, 48, 50, 50, 50, 50, 49, 49,
			42, 42, 43, 43, 43, 45, 47, 47, 47, 48, 50, 50, 50, 50, 49, 49,
			42, 42, 43, 43, 43, 45, 47, 47, 47, 48, 50, 50, 50, 50, 49, 49,
			45, 45, 44, 44, 44, 46, 47, 47, 47, 49, 51, 51, 51, 51, 51, 51,
			49, 48, 46, 46, 46, 47, 48, 48, 48, 50, 53, 53, 53, 53, 53, 53,
			49, 48, 46, 46, 46, 47, 48, 48, 48, 50, 53, 53, 53, 53, 53, 53,
			49, 48, 46, 46, 46, 47, 48, 48, 48, 50, 53, 53, 53, 53, 53, 53,
			48, 47, 46, 46, 46, 47, 47, 47, 47, 50, 53, 53, 53, 54, 54, 54,
			48, 47, 46, 46, 46, 46, 47, 47, 47, 50, 53, 53, 53, 54, 56, 56,
			48, 47, 46, 46, 46, 46, 47, 47, 47, 50, 53, 53, 53, 54, 56, 56,
			48, 47, 46, 46, 46, 46, 47, 47, 47, 50, 53, 53, 53, 54, 56, 56,
			48, 47, 45, 45, 45, 46, 46, 46, 46, 49, 53, 53, 53, 55, 57, 57,
			49, 47, 45, 45, 45, 45, 46, 46, 46, 49, 53, 53, 53, 56, 58, 58,
			49, 47, 45, 45, 45, 45, 46, 46, 46, 49, 53, 53, 53, 56, 58, 58,
		},
	},
	{
		{ // level 11, luma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 32, 31, 31, 31, 32, 32, 31,
			31, 31, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 31, 31, 32, 32,
			32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 32, 32, 31, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 33, 33, 33, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 33, 33, 33, 33, 31, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 33, 33, 33, 33, 33, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 33, 33, 33, 33, 33, 34, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 35, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 35, 35, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 35,
			35, 35, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 34,
			34, 34, 34, 35, 35, 35, 35, 32, 32, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 33, 34, 34, 34, 34, 35, 35, 36, 36, 36, 36, 33, 33, 33,
			33, 33, 33, 33, 33, 33, 33, 33, 34, 34, 35, 35, 35, 35, 36, 36,
			36, 36, 37, 38, 34, 34, 34, 34, 34, 34, 34, 33, 33, 33, 33, 34,
			35, 35, 35, 35, 36, 36, 37, 37, 37, 38, 39, 39, 34, 34, 34, 34,
			34, 34, 34, 33, 33, 33, 33, 34, 35, 35, 35, 35, 36, 36, 37, 37,
			37, 38, 39, 39, 39, 34, 34, 34, 34, 34, 34, 34, 33, 33, 33, 33,
			34, 35, 35, 35, 35, 36, 36, 37, 37, 37, 38, 39, 39, 39, 39, 34,
			34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 35, 36, 36, 36, 36,
			37, 37, 37, 37, 38, 40, 41, 41, 41, 42, 35, 35, 35, 35, 35, 35,
			34, 34, 34, 34, 34, 35, 36, 36, 36, 36, 37, 37, 38, 38, 38, 39,
			41, 42, 42, 42, 44, 46, 36, 35, 35, 35, 35, 35, 35, 34, 34, 34,
			34, 35, 36, 36, 36, 36, 37, 38, 38, 38, 38, 40, 42, 42, 42, 42,
			45, 47, 48, 36, 35, 35, 35, 35, 35, 35, 34, 34, 34, 34, 35, 36,
			36, 36, 36, 37, 38, 38, 38, 38, 40, 42, 42, 42, 42, 45, 47, 48,
			48, 36, 35, 35, 35, 35, 35, 35, 34, 34, 34, 34, 35, 36, 36, 36,
			36, 37, 38, 38, 38, 38, 40, 42, 42, 42, 42, 45, 47, 48, 48, 48,
			37, 37, 36, 36, 36, 36, 36, 35, 35, 35, 35, 36, 37, 37, 37, 37,
			38, 39, 39, 39, 39, 41, 42, 43, 43, 43, 45, 48, 49, 49, 49, 50,
			32, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 33, 35, 36, 36, 36,
			31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 33, 35, 35, 35, 35,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 35, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 34,
			31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 34,
			31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 34, 34,
			31, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 34, 35, 35, 35, 35,
			31, 32, 32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 35, 36, 36, 36,
			32, 32, 32, 32, 32, 32, 33, 34, 34, 34, 34, 35, 36, 36, 36, 36,
			32, 32, 32, 32, 32, 32, 33, 34, 34, 34, 34, 35, 36, 36, 36, 36,
			32, 32, 32, 32, 32, 32, 33, 34, 34, 34, 34, 35, 36, 36, 36, 36,
			32, 32, 32, 32, 32, 32, 33, 34, 34, 34, 34, 35, 36, 37, 37, 37,
			32, 32, 32, 33, 33, 33, 33, 34, 35, 35, 35, 36, 37, 38, 38, 38,
			32, 32, 32, 33, 33, 33, 34, 35, 35, 35, 35, 36, 37, 38, 38, 38,
			32, 32, 32, 33, 33, 33, 34, 35, 35, 35, 35, 36, 37, 38, 38, 38,
			32, 32, 32, 33, 33, 33, 34, 35, 35, 35, 35, 36, 37, 38, 38, 38,
			32, 33, 33, 33, 33, 33, 34, 35, 36, 36, 36, 37, 39, 40, 40, 40,
			33, 33, 33, 33, 33, 33, 35, 36, 36, 36, 36, 38, 40, 41, 41, 41,
			34, 34, 34, 34, 34, 34, 35, 36, 37, 37, 37, 39, 41, 42, 42, 42,
			34, 34, 34, 34, 34, 34, 35, 36, 37, 37, 37, 39, 41, 42, 42, 42,
			34, 34, 34, 34, 34, 34, 35, 36, 37, 37, 37, 39, 41, 42, 42, 42,
			34, 34, 34, 34, 34, 34, 35, 37, 37, 37, 37, 40, 43, 44, 44, 44,
			35, 35, 34, 34, 34, 34, 36, 37, 38, 38, 38, 41, 45, 47, 47, 47,
			36, 35, 35, 34, 34, 34, 36, 37, 38, 38, 38, 42, 46, 48, 48, 48,
			36, 35, 35, 34, 34, 34, 36, 37, 38, 38, 38, 42, 46, 48, 48, 48,
			36, 35, 35, 34, 34, 34, 36, 37, 38, 38, 38, 42, 46, 48, 48, 48,
			37, 36, 36, 36, 36, 36, 37, 38, 39, 39, 39, 42, 46, 49, 49, 49,
		},
		{ // level 11, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 31, 31, 31,
			31, 31, 31, 31, 30, 30, 31, 31, 31, 31, 31, 31, 32, 30, 30, 31,
			31, 31, 31, 31, 31, 32, 32, 30, 30, 31, 31, 31, 31, 31, 31, 32,
			32, 32, 31, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 34, 33, 33,
			33, 34, 34, 34, 34, 34, 34, 34, 34, 36, 37, 33, 34, 34, 34, 34,
			34, 35, 35, 35, 35, 35, 37, 38, 39, 33, 34, 34, 34, 34, 34, 35,
			35, 35, 35, 35, 37, 38, 39, 39, 33, 34, 34, 34, 34, 34, 35, 35,
			35, 35, 35, 37, 38, 39, 39, 39, 34, 35, 36, 36, 36, 36, 36, 37,
			37, 37, 37, 38, 40, 40, 40, 40, 42, 36, 36, 37, 37, 37, 37, 38,
			38, 39, 39, 39, 40, 41, 42, 42, 42, 44, 46, 36, 37, 38, 38, 38,
			38, 39, 39, 40, 40, 40, 41, 42, 43, 43, 43, 45, 46, 47, 36, 37,
			38, 38, 38, 38, 39, 39, 40, 40, 40, 41, 42, 43, 43, 43, 45, 46,
			47, 47, 36, 37, 38, 38, 38, 38, 39, 39, 40, 40, 40, 41, 42, 43,
			43, 43, 45, 46, 47, 47, 47, 38, 39, 39, 40, 40, 40, 40, 41, 41,
			41, 41, 42, 43, 44, 44, 44, 45, 47, 47, 47, 47, 47, 40, 41, 41,
			41, 41, 41, 41, 42, 42, 42, 42, 43, 44, 44, 44, 44, 45, 47, 47,
			47, 47, 48, 48, 41, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 43,
			44, 45, 45, 45, 46, 47, 47, 47, 47, 48, 48, 48, 41, 42, 42, 42,
			42, 42, 42, 42, 42, 42, 42, 43, 44, 45, 45, 45, 46, 47, 47, 47,
			47, 48, 48, 48, 48, 41, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42,
			43, 44, 45, 45, 45, 46, 47, 47, 47, 47, 48, 48, 48, 48, 48, 44,
			44, 44, 44, 44, 44, 44, 44, 44, 44, 44, 44, 45, 46, 46, 46, 46,
			47, 47, 47, 47, 48, 49, 49, 49, 49, 50, 47, 47, 46, 46, 46, 46,
			46, 46, 45, 45, 45, 46, 46, 47, 47, 47, 47, 47, 47, 47, 47, 48,
			49, 50, 50, 50, 51, 52, 49, 48, 48, 47, 47, 47, 47, 46, 46, 46,
			46, 46, 47, 47, 47, 47, 47, 47, 48, 48, 48, 49, 50, 50, 50, 50,
			51, 52, 53, 49, 48, 48, 47, 47, 47, 47, 46, 46, 46, 46, 46, 47,
			47, 47, 47, 47, 47, 48, 48, 48, 49, 50, 50, 50, 50, 51, 52, 53,
			53, 49, 48, 48, 47, 47, 47, 47, 46, 46, 46, 46, 46, 47, 47, 47,
			47, 47, 47, 48, 48, 48, 49, 50, 50, 50, 50, 51, 52, 53, 53, 53,
			49, 48, 47, 47, 47, 47, 47, 46, 46, 46, 46, 46, 46, 47, 47, 47,
			47, 47, 47, 47, 47, 48, 49, 50, 50, 50, 51, 52, 53, 53, 53, 53,
			32, 31, 31, 31, 31, 31, 33, 35, 37, 37, 37, 40, 45, 48, 48, 48,
			31, 31, 31, 31, 31, 31, 33, 36, 37, 37, 37, 41, 45, 48, 48, 48,
			31, 31, 31, 31, 31, 31, 34, 36, 38, 38, 38, 41, 45, 47, 47, 47,
			31, 31, 31, 31, 31, 31, 34, 37, 38, 38, 38, 41, 45, 47, 47, 47,
			31, 31, 31, 31, 31, 31, 34, 37, 38, 38, 38, 41, 45, 47, 47, 47,
			31, 31, 31, 31, 31, 31, 34, 37, 38, 38, 38, 41, 45, 47, 47, 47,
			31, 31, 31, 32, 32, 32, 34, 37, 39, 39, 39, 41, 45, 46, 46, 46,
			30, 31, 31, 32, 32, 32, 34, 38, 39, 39, 39, 42, 44, 46, 46, 46,
			30, 31, 32, 32, 32, 32, 35, 38, 40, 40, 40, 42, 44, 46, 46, 46,
			30, 31, 32, 32, 32, 32, 35, 38, 40, 40, 40, 42, 44, 46, 46, 46,
			30, 31, 32, 32, 32, 32, 35, 38, 40, 40, 40, 42, 44, 46, 46, 46,
			31, 32, 33, 33, 33, 33, 36, 39, 41, 41, 41, 43, 45, 46, 46, 46,
			33, 34, 34, 35, 35, 35, 37, 40, 42, 42, 42, 44, 46, 47, 47, 47,
			33, 34, 35, 36, 36, 36, 38, 41, 43, 43, 43, 44, 46, 47, 47, 47,
			33, 34, 35, 36, 36, 36, 38, 41, 43, 43, 43, 44, 46, 47, 47, 47,
			33, 34, 35, 36, 36, 36, 38, 41, 43, 43, 43, 44, 46, 47, 47, 47,
			35, 36, 37, 37, 37, 37, 40, 43, 44, 44, 44, 45, 46, 47, 47, 47,
			36, 37, 38, 39, 39, 39, 42, 44, 46, 46, 46, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 43, 45, 47, 47, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 43, 45, 47, 47, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 43, 45, 47, 47, 47, 47, 47, 47, 47, 47,
			39, 39, 40, 41, 41, 41, 43, 46, 47, 47, 47, 48, 48, 48, 48, 48,
			41, 41, 42, 42, 42, 42, 44, 46, 47, 47, 47, 48, 49, 49, 49, 49,
			42, 42, 42, 43, 43, 43, 44, 46, 47, 47, 47, 48, 49, 50, 50, 50,
			42, 42, 42, 43, 43, 43, 44, 46, 47, 47, 47, 48, 49, 50, 50, 50,
			42, 42, 42, 43, 43, 43, 44, 46, 47, 47, 47, 48, 49, 50, 50, 50,
			44, 44, 44, 44, 44, 44, 45, 47, 47, 47, 47, 49, 50, 51, 51, 51,
			47, 46, 46, 46, 46, 46, 46, 47, 48, 48, 48, 49, 51, 52, 52, 52,
			49, 48, 47, 46, 46, 46, 47, 48, 48, 48, 48, 50, 52, 53, 53, 53,
			49, 48, 47, 46, 46, 46, 47, 48, 48, 48, 48, 50, 52, 53, 53, 53,
			49, 48, 47, 46, 46, 46, 47, 48, 48, 48, 48, 50, 52, 53, 53, 53,
			49, 48, 47, 46, 46, 46, 47, 47, 47, 47, 47, 49, 52, 53, 53, 53,
		},
	},
	{
		{ // level 12, luma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 31,
			31, 31, 32, 32, 32, 31, 31, 31, 32, 32, 32, 32, 31, 31, 31, 32,
			32, 32, 32, 32, 31, 31, 31, 32, 32, 32, 32, 32, 32, 31, 31, 31,
			32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 31, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33,
			33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 33, 33, 33, 33, 33, 33, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33, 34, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33,
			33, 33, 34, 34, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 34, 35, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34,
			34, 34, 35, 35, 35, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35, 35, 35, 35, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33,
			34, 34, 34, 34, 34, 35, 35, 35, 35, 35, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 34, 34, 34, 34, 34, 34,
			35, 35, 35, 35, 35, 35, 32, 32, 33, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 33, 33, 33, 34, 34, 34, 34, 34, 34, 35, 35, 35, 36, 36,
			36, 36, 36, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 34, 34, 35, 35, 35, 35, 35, 35, 36, 36, 36, 36, 36, 37,
			38, 34, 34, 34, 34, 34, 34, 34, 34, 34, 33, 33, 33, 33, 33, 34,
			34, 35, 35, 35, 35, 35, 35, 36, 36, 37, 37, 37, 37, 38, 38, 39,
			34, 34, 34, 34, 34, 34, 34, 34, 34, 33, 33, 33, 33, 33, 34, 34,
			35, 35, 35, 35, 35, 35, 36, 36, 37, 37, 37, 37, 38, 38, 39, 39,
			32, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 34,
			31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 34,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 34,
			31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 34, 34,
			31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 34, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34, 34, 34, 34, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 34, 34, 34, 34, 34, 35, 35,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 34, 35, 35, 35, 35, 35, 36,
			32, 32, 32, 32, 33, 33, 33, 33, 33, 34, 35, 35, 35, 35, 36, 36,
			32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 35, 35, 35, 35, 36, 37,
			32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 35, 35, 35, 35, 36, 37,
			32, 32, 32, 32, 33, 33, 33, 33, 34, 34, 35, 35, 35, 35, 36, 37,
			32, 32, 32, 33, 33, 33, 33, 33, 34, 34, 35, 35, 35, 35, 36, 37,
			32, 33, 33, 33, 33, 33, 33, 33, 34, 35, 36, 36, 36, 36, 36, 38,
			33, 33, 33, 33, 33, 33, 33, 34, 34, 35, 36, 36, 36, 36, 37, 38,
			34, 34, 34, 34, 34, 34, 34, 34, 35, 36, 37, 37, 37, 37, 38, 39,
			34, 34, 34, 34, 34, 34, 34, 34, 35, 36, 37, 37, 37, 37, 38, 39,
		},
		{ // level 12, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 30, 30, 31, 31, 31, 31, 31, 31, 31,
			31, 32, 30, 30, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 30, 30,
			31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 30, 30, 31, 31, 31,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 33, 32, 32, 32, 32, 33, 33, 33, 33,
			33, 33, 33, 33, 33, 33, 34, 35, 33, 33, 33, 34, 34, 34, 34, 34,
			34, 34, 34, 34, 34, 34, 35, 36, 37, 33, 34, 34, 34, 34, 34, 34,
			34, 35, 35, 35, 35, 35, 35, 36, 37, 38, 39, 33, 34, 34, 34, 34,
			34, 34, 34, 35, 35, 35, 35, 35, 35, 36, 37, 38, 39, 39, 33, 34,
			34, 34, 34, 34, 34, 34, 35, 35, 35, 35, 35, 35, 36, 37, 38, 39,
			39, 39, 33, 34, 34, 34, 34, 34, 34, 34, 35, 35, 35, 35, 35, 35,
			36, 37, 38, 39, 39, 39, 39, 34, 35, 35, 35, 35, 35, 35, 36, 36,
			36, 36, 36, 36, 36, 37, 38, 39, 40, 40, 40, 40, 41, 35, 36, 36,
			36, 37, 37, 37, 37, 37, 37, 38, 38, 38, 38, 38, 39, 41, 41, 41,
			41, 41, 42, 44, 36, 37, 37, 38, 38, 38, 38, 38, 38, 39, 39, 39,
			39, 39, 40, 41, 42, 43, 43, 43, 43, 44, 45, 46, 36, 37, 37, 38,
			38, 38, 38, 38, 39, 39, 40, 40, 40, 40, 40, 41, 42, 43, 43, 43,
			43, 44, 46, 47, 47, 36, 37, 37, 38, 38, 38, 38, 38, 39, 39, 40,
			40, 40, 40, 40, 41, 42, 43, 43, 43, 43, 44, 46, 47, 47, 47, 36,
			37, 37, 38, 38, 38, 38, 38, 39, 39, 40, 40, 40, 40, 40, 41, 42,
			43, 43, 43, 43, 44, 46, 47, 47, 47, 47, 37, 37, 38, 38, 39, 39,
			39, 39, 39, 40, 40, 40, 40, 40, 41, 42, 43, 43, 43, 43, 43, 44,
			46, 47, 47, 47, 47, 47, 38, 39, 39, 40, 40, 40, 40, 40, 40, 40,
			41, 41, 41, 41, 41, 42, 43, 44, 44, 44, 44, 45, 46, 47, 47, 47,
			47, 47, 47, 40, 40, 40, 41, 41, 41, 41, 41, 41, 41, 42, 42, 42,
			42, 42, 43, 44, 44, 44, 44, 44, 45, 46, 47, 47, 47, 47, 47, 48,
			48, 41, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 43,
			43, 44, 45, 45, 45, 45, 45, 46, 47, 47, 47, 47, 47, 48, 48, 48,
			41, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 43, 43,
			44, 45, 45, 45, 45, 45, 46, 47, 47, 47, 47, 47, 48, 48, 48, 48,
			32, 31, 31, 31, 31, 31, 31, 31, 33, 35, 37, 37, 37, 37, 38, 42,
			31, 31, 31, 31, 31, 31, 31, 31, 33, 35, 37, 37, 37, 37, 39, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 33, 35, 38, 38, 38, 38, 39, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 34, 36, 38, 38, 38, 38, 40, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 34, 36, 38, 38, 38, 38, 40, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 34, 36, 38, 38, 38, 38, 40, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 34, 36, 38, 38, 38, 38, 40, 42,
			31, 31, 31, 31, 31, 31, 31, 32, 34, 36, 38, 38, 38, 38, 40, 42,
			31, 31, 31, 31, 32, 32, 32, 32, 34, 36, 39, 39, 39, 39, 40, 42,
			30, 31, 31, 32, 32, 32, 32, 32, 34, 37, 39, 39, 39, 39, 40, 42,
			30, 31, 31, 32, 32, 32, 32, 33, 35, 37, 40, 40, 40, 40, 41, 42,
			30, 31, 31, 32, 32, 32, 32, 33, 35, 37, 40, 40, 40, 40, 41, 42,
			30, 31, 31, 32, 32, 32, 32, 33, 35, 37, 40, 40, 40, 40, 41, 42,
			30, 31, 31, 32, 32, 32, 32, 33, 35, 37, 40, 40, 40, 40, 41, 42,
			31, 31, 32, 32, 33, 33, 33, 33, 35, 38, 40, 40, 40, 40, 41, 43,
			32, 32, 33, 33, 34, 34, 34, 34, 36, 39, 41, 41, 41, 41, 42, 44,
			33, 33, 34, 35, 35, 35, 35, 35, 37, 40, 42, 42, 42, 42, 43, 44,
			33, 34, 35, 35, 36, 36, 36, 36, 38, 40, 43, 43, 43, 43, 44, 45,
			33, 34, 35, 35, 36, 36, 36, 36, 38, 40, 43, 43, 43, 43, 44, 45,
			33, 34, 35, 35, 36, 36, 36, 36, 38, 40, 43, 43, 43, 43, 44, 45,
			33, 34, 35, 35, 36, 36, 36, 36, 38, 40, 43, 43, 43, 43, 44, 45,
			34, 35, 36, 37, 37, 37, 37, 37, 39, 42, 44, 44, 44, 44, 45, 45,
			35, 36, 37, 38, 38, 38, 38, 39, 41, 43, 45, 45, 45, 45, 46, 46,
			36, 37, 38, 39, 39, 39, 39, 40, 42, 44, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 40, 41, 43, 45, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 40, 41, 43, 45, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 40, 41, 43, 45, 47, 47, 47, 47, 47, 47,
			37, 38, 39, 40, 40, 40, 40, 41, 43, 45, 47, 47, 47, 47, 47, 47,
			39, 39, 40, 41, 41, 41, 41, 42, 43, 45, 47, 47, 47, 47, 47, 48,
			40, 41, 41, 42, 42, 42, 42, 42, 44, 45, 47, 47, 47, 47, 47, 48,
			42, 42, 42, 43, 43, 43, 43, 43, 44, 46, 47, 47, 47, 47, 48, 48,
			42, 42, 42, 43, 43, 43, 43, 43, 44, 46, 47, 47, 47, 47, 48, 48,
		},
	},
	{
		{ // level 13, luma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 32, 31, 31, 31, 31, 31, 32, 32, 31, 31, 31, 31,
			31, 32, 32, 32, 31, 31, 31, 31, 31, 32, 32, 32, 32, 31, 31, 31,
			31, 31, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 31, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 33, 33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 31,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 31, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			33, 33, 33, 33, 33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33,
			33, 33, 33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33,
			33, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33, 33, 33,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33, 33,
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 34, 34,
		},
		{ // level 13, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 30, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 30, 30, 30, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 32, 30, 30, 30, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 32, 32, 30, 30, 30, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 30, 30, 30, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 30, 30,
			30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32,
			32, 32, 30, 30, 30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 31, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 34, 34, 32, 32, 32, 33, 33, 33, 33, 33, 33, 33, 33, 33,
			33, 33, 34, 34, 34, 34, 34, 34, 34, 34, 35, 36, 33, 33, 33, 33,
			33, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34,
			34, 35, 36, 37, 37, 33, 33, 34, 34, 34, 34, 34, 34, 34, 34, 34,
			35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 36, 37, 37, 38, 39, 33,
			33, 34, 34, 34, 34, 34, 34, 34, 34, 34, 35, 35, 35, 35, 35, 35,
			35, 35, 35, 35, 36, 37, 37, 38, 39, 39, 33, 33, 34, 34, 34, 34,
			34, 34, 34, 34, 34, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 36,
			37, 37, 38, 39, 39, 39, 33, 33, 34, 34, 34, 34, 34, 34, 34, 34,
			34, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 36, 37, 37, 38, 39,
			39, 39, 39, 33, 33, 34, 34, 34, 34, 34, 34, 34, 34, 34, 35, 35,
			35, 35, 35, 35, 35, 35, 35, 35, 36, 37, 37, 38, 39, 39, 39, 39,
			39, 33, 33, 34, 34, 34, 34, 34, 34, 34, 34, 34, 35, 35, 35, 35,
			35, 35, 35, 35, 35, 35, 36, 37, 37, 38, 39, 39, 39, 39, 39, 39,
			34, 34, 34, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 36, 36, 36,
			36, 36, 36, 36, 36, 37, 37, 38, 39, 40, 40, 40, 40, 40, 40, 40,
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 33, 34, 35, 37,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 33, 34, 35, 37,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 33, 34, 36, 37,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 33, 35, 36, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 34, 35, 36, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 33, 34, 35, 37, 38,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 33, 34, 36, 37, 39,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 33, 34, 36, 37, 39,
			30, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 33, 34, 36, 38, 39,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			30, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 33, 35, 36, 38, 40,
			31, 31, 31, 32, 32, 33, 33, 33, 33, 33, 33, 34, 35, 37, 38, 40,
			31, 32, 32, 33, 33, 33, 33, 33, 33, 33, 33, 35, 36, 37, 39, 41,
			32, 32, 33, 33, 34, 34, 34, 34, 34, 34, 34, 35, 37, 38, 40, 41,
			33, 33, 34, 34, 34, 35, 35, 35, 35, 35, 35, 36, 37, 39, 40, 42,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			33, 34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 37, 38, 40, 41, 43,
			34, 34, 35, 35, 36, 36, 36, 36, 36, 36, 36, 38, 39, 40, 42, 44,
		},
	},
	{
		{ // level 14, luma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			32, 32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 31, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31,
			31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31,
			31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
		},
		{ // level 14, chroma
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30,
			30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 30, 30, 30, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 30, 30, 30, 30, 30, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 30, 30, 30, 30, 30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32,
			30, 30, 30, 30, 30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32,
			32, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32,
			31, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32,
			30, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32,
			30, 31, 31, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32,
			30, 30, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32,
			30, 30, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32,
			30, 30, 31, 31, 31, 31, 31, 31, 32, 32, 32, 32, 32, 32, 32, 32,
		},
	},
}
