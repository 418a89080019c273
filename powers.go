// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

// powerOf10Min and powerOf10Max are the inclusive bounds of the decimal
// exponent supported directly by powersOfTen. They double as the driver's
// flush-to-zero / flush-to-infinity gates (parse.go): every exp10 the
// driver does not flush is guaranteed to be in range here.
const (
	powerOf10Min = -342
	powerOf10Max = 308
)

// power128 holds the top 128 bits of 10**n, truncated (not rounded) after
// normalizing so bit 127 of the pair (hi, lo) is set. lo holds the low 64
// bits, hi the high 64 bits -- i.e. the 128-bit value is hi<<64 | lo.
type power128 struct {
	lo, hi uint64
}

// powersOfTen is indexed by exp10 - powerOf10Min, for
// exp10 in [powerOf10Min, powerOf10Max]. Generated mechanically (see
// DESIGN.md) by truncating the exact rational value of 10**exp10 to its
// top 128 bits; entries are exact for 0 <= exp10 <= 55 (the odd part of
// 10**exp10, 5**exp10, still fits in 128 bits), and are a one-sided (floor) approximation
// for all other entries, exactly as assumed by the Eisel-Lemire refinement
// steps in eisel_lemire.go.
var powersOfTen = [powerOf10Max - powerOf10Min + 1]power128{
	{lo: 0x113faa2906a13b3f, hi: 0xeef453d6923bd65a}, // exp10 = -342, index 0
	{lo: 0x4ac7ca59a424c507, hi: 0x9558b4661b6565f8}, // exp10 = -341, index 1
	{lo: 0x5d79bcf00d2df649, hi: 0xbaaee17fa23ebf76}, // exp10 = -340, index 2
	{lo: 0xf4d82c2c107973dc, hi: 0xe95a99df8ace6f53}, // exp10 = -339, index 3
	{lo: 0x79071b9b8a4be869, hi: 0x91d8a02bb6c10594}, // exp10 = -338, index 4
	{lo: 0x9748e2826cdee284, hi: 0xb64ec836a47146f9}, // exp10 = -337, index 5
	{lo: 0xfd1b1b2308169b25, hi: 0xe3e27a444d8d98b7}, // exp10 = -336, index 6
	{lo: 0xfe30f0f5e50e20f7, hi: 0x8e6d8c6ab0787f72}, // exp10 = -335, index 7
	{lo: 0xbdbd2d335e51a935, hi: 0xb208ef855c969f4f}, // exp10 = -334, index 8
	{lo: 0xad2c788035e61382, hi: 0xde8b2b66b3bc4723}, // exp10 = -333, index 9
	{lo: 0x4c3bcb5021afcc31, hi: 0x8b16fb203055ac76}, // exp10 = -332, index 10
	{lo: 0xdf4abe242a1bbf3d, hi: 0xaddcb9e83c6b1793}, // exp10 = -331, index 11
	{lo: 0xd71d6dad34a2af0d, hi: 0xd953e8624b85dd78}, // exp10 = -330, index 12
	{lo: 0x8672648c40e5ad68, hi: 0x87d4713d6f33aa6b}, // exp10 = -329, index 13
	{lo: 0x680efdaf511f18c2, hi: 0xa9c98d8ccb009506}, // exp10 = -328, index 14
	{lo: 0x0212bd1b2566def2, hi: 0xd43bf0effdc0ba48}, // exp10 = -327, index 15
	{lo: 0x014bb630f7604b57, hi: 0x84a57695fe98746d}, // exp10 = -326, index 16
	{lo: 0x419ea3bd35385e2d, hi: 0xa5ced43b7e3e9188}, // exp10 = -325, index 17
	{lo: 0x52064cac828675b9, hi: 0xcf42894a5dce35ea}, // exp10 = -324, index 18
	{lo: 0x7343efebd1940993, hi: 0x818995ce7aa0e1b2}, // exp10 = -323, index 19
	{lo: 0x1014ebe6c5f90bf8, hi: 0xa1ebfb4219491a1f}, // exp10 = -322, index 20
	{lo: 0xd41a26e077774ef6, hi: 0xca66fa129f9b60a6}, // exp10 = -321, index 21
	{lo: 0x8920b098955522b4, hi: 0xfd00b897478238d0}, // exp10 = -320, index 22
	{lo: 0x55b46e5f5d5535b0, hi: 0x9e20735e8cb16382}, // exp10 = -319, index 23
	{lo: 0xeb2189f734aa831d, hi: 0xc5a890362fddbc62}, // exp10 = -318, index 24
	{lo: 0xa5e9ec7501d523e4, hi: 0xf712b443bbd52b7b}, // exp10 = -317, index 25
	{lo: 0x47b233c92125366e, hi: 0x9a6bb0aa55653b2d}, // exp10 = -316, index 26
	{lo: 0x999ec0bb696e840a, hi: 0xc1069cd4eabe89f8}, // exp10 = -315, index 27
	{lo: 0xc00670ea43ca250d, hi: 0xf148440a256e2c76}, // exp10 = -314, index 28
	{lo: 0x380406926a5e5728, hi: 0x96cd2a865764dbca}, // exp10 = -313, index 29
	{lo: 0xc605083704f5ecf2, hi: 0xbc807527ed3e12bc}, // exp10 = -312, index 30
	{lo: 0xf7864a44c633682e, hi: 0xeba09271e88d976b}, // exp10 = -311, index 31
	{lo: 0x7ab3ee6afbe0211d, hi: 0x93445b8731587ea3}, // exp10 = -310, index 32
	{lo: 0x5960ea05bad82964, hi: 0xb8157268fdae9e4c}, // exp10 = -309, index 33
	{lo: 0x6fb92487298e33bd, hi: 0xe61acf033d1a45df}, // exp10 = -308, index 34
	{lo: 0xa5d3b6d479f8e056, hi: 0x8fd0c16206306bab}, // exp10 = -307, index 35
	{lo: 0x8f48a4899877186c, hi: 0xb3c4f1ba87bc8696}, // exp10 = -306, index 36
	{lo: 0x331acdabfe94de87, hi: 0xe0b62e2929aba83c}, // exp10 = -305, index 37
	{lo: 0x9ff0c08b7f1d0b14, hi: 0x8c71dcd9ba0b4925}, // exp10 = -304, index 38
	{lo: 0x07ecf0ae5ee44dd9, hi: 0xaf8e5410288e1b6f}, // exp10 = -303, index 39
	{lo: 0xc9e82cd9f69d6150, hi: 0xdb71e91432b1a24a}, // exp10 = -302, index 40
	{lo: 0xbe311c083a225cd2, hi: 0x892731ac9faf056e}, // exp10 = -301, index 41
	{lo: 0x6dbd630a48aaf406, hi: 0xab70fe17c79ac6ca}, // exp10 = -300, index 42
	{lo: 0x092cbbccdad5b108, hi: 0xd64d3d9db981787d}, // exp10 = -299, index 43
	{lo: 0x25bbf56008c58ea5, hi: 0x85f0468293f0eb4e}, // exp10 = -298, index 44
	{lo: 0xaf2af2b80af6f24e, hi: 0xa76c582338ed2621}, // exp10 = -297, index 45
	{lo: 0x1af5af660db4aee1, hi: 0xd1476e2c07286faa}, // exp10 = -296, index 46
	{lo: 0x50d98d9fc890ed4d, hi: 0x82cca4db847945ca}, // exp10 = -295, index 47
	{lo: 0xe50ff107bab528a0, hi: 0xa37fce126597973c}, // exp10 = -294, index 48
	{lo: 0x1e53ed49a96272c8, hi: 0xcc5fc196fefd7d0c}, // exp10 = -293, index 49
	{lo: 0x25e8e89c13bb0f7a, hi: 0xff77b1fcbebcdc4f}, // exp10 = -292, index 50
	{lo: 0x77b191618c54e9ac, hi: 0x9faacf3df73609b1}, // exp10 = -291, index 51
	{lo: 0xd59df5b9ef6a2417, hi: 0xc795830d75038c1d}, // exp10 = -290, index 52
	{lo: 0x4b0573286b44ad1d, hi: 0xf97ae3d0d2446f25}, // exp10 = -289, index 53
	{lo: 0x4ee367f9430aec32, hi: 0x9becce62836ac577}, // exp10 = -288, index 54
	{lo: 0x229c41f793cda73f, hi: 0xc2e801fb244576d5}, // exp10 = -287, index 55
	{lo: 0x6b43527578c1110f, hi: 0xf3a20279ed56d48a}, // exp10 = -286, index 56
	{lo: 0x830a13896b78aaa9, hi: 0x9845418c345644d6}, // exp10 = -285, index 57
	{lo: 0x23cc986bc656d553, hi: 0xbe5691ef416bd60c}, // exp10 = -284, index 58
	{lo: 0x2cbfbe86b7ec8aa8, hi: 0xedec366b11c6cb8f}, // exp10 = -283, index 59
	{lo: 0x7bf7d71432f3d6a9, hi: 0x94b3a202eb1c3f39}, // exp10 = -282, index 60
	{lo: 0xdaf5ccd93fb0cc53, hi: 0xb9e08a83a5e34f07}, // exp10 = -281, index 61
	{lo: 0xd1b3400f8f9cff68, hi: 0xe858ad248f5c22c9}, // exp10 = -280, index 62
	{lo: 0x23100809b9c21fa1, hi: 0x91376c36d99995be}, // exp10 = -279, index 63
	{lo: 0xabd40a0c2832a78a, hi: 0xb58547448ffffb2d}, // exp10 = -278, index 64
	{lo: 0x16c90c8f323f516c, hi: 0xe2e69915b3fff9f9}, // exp10 = -277, index 65
	{lo: 0xae3da7d97f6792e3, hi: 0x8dd01fad907ffc3b}, // exp10 = -276, index 66
	{lo: 0x99cd11cfdf41779c, hi: 0xb1442798f49ffb4a}, // exp10 = -275, index 67
	{lo: 0x40405643d711d583, hi: 0xdd95317f31c7fa1d}, // exp10 = -274, index 68
	{lo: 0x482835ea666b2572, hi: 0x8a7d3eef7f1cfc52}, // exp10 = -273, index 69
	{lo: 0xda3243650005eecf, hi: 0xad1c8eab5ee43b66}, // exp10 = -272, index 70
	{lo: 0x90bed43e40076a82, hi: 0xd863b256369d4a40}, // exp10 = -271, index 71
	{lo: 0x5a7744a6e804a291, hi: 0x873e4f75e2224e68}, // exp10 = -270, index 72
	{lo: 0x711515d0a205cb36, hi: 0xa90de3535aaae202}, // exp10 = -269, index 73
	{lo: 0x0d5a5b44ca873e03, hi: 0xd3515c2831559a83}, // exp10 = -268, index 74
	{lo: 0xe858790afe9486c2, hi: 0x8412d9991ed58091}, // exp10 = -267, index 75
	{lo: 0x626e974dbe39a872, hi: 0xa5178fff668ae0b6}, // exp10 = -266, index 76
	{lo: 0xfb0a3d212dc8128f, hi: 0xce5d73ff402d98e3}, // exp10 = -265, index 77
	{lo: 0x7ce66634bc9d0b99, hi: 0x80fa687f881c7f8e}, // exp10 = -264, index 78
	{lo: 0x1c1fffc1ebc44e80, hi: 0xa139029f6a239f72}, // exp10 = -263, index 79
	{lo: 0xa327ffb266b56220, hi: 0xc987434744ac874e}, // exp10 = -262, index 80
	{lo: 0x4bf1ff9f0062baa8, hi: 0xfbe9141915d7a922}, // exp10 = -261, index 81
	{lo: 0x6f773fc3603db4a9, hi: 0x9d71ac8fada6c9b5}, // exp10 = -260, index 82
	{lo: 0xcb550fb4384d21d3, hi: 0xc4ce17b399107c22}, // exp10 = -259, index 83
	{lo: 0x7e2a53a146606a48, hi: 0xf6019da07f549b2b}, // exp10 = -258, index 84
	{lo: 0x2eda7444cbfc426d, hi: 0x99c102844f94e0fb}, // exp10 = -257, index 85
	{lo: 0xfa911155fefb5308, hi: 0xc0314325637a1939}, // exp10 = -256, index 86
	{lo: 0x793555ab7eba27ca, hi: 0xf03d93eebc589f88}, // exp10 = -255, index 87
	{lo: 0x4bc1558b2f3458de, hi: 0x96267c7535b763b5}, // exp10 = -254, index 88
	{lo: 0x9eb1aaedfb016f16, hi: 0xbbb01b9283253ca2}, // exp10 = -253, index 89
	{lo: 0x465e15a979c1cadc, hi: 0xea9c227723ee8bcb}, // exp10 = -252, index 90
	{lo: 0x0bfacd89ec191ec9, hi: 0x92a1958a7675175f}, // exp10 = -251, index 91
	{lo: 0xcef980ec671f667b, hi: 0xb749faed14125d36}, // exp10 = -250, index 92
	{lo: 0x82b7e12780e7401a, hi: 0xe51c79a85916f484}, // exp10 = -249, index 93
	{lo: 0xd1b2ecb8b0908810, hi: 0x8f31cc0937ae58d2}, // exp10 = -248, index 94
	{lo: 0x861fa7e6dcb4aa15, hi: 0xb2fe3f0b8599ef07}, // exp10 = -247, index 95
	{lo: 0x67a791e093e1d49a, hi: 0xdfbdcece67006ac9}, // exp10 = -246, index 96
	{lo: 0xe0c8bb2c5c6d24e0, hi: 0x8bd6a141006042bd}, // exp10 = -245, index 97
	{lo: 0x58fae9f773886e18, hi: 0xaecc49914078536d}, // exp10 = -244, index 98
	{lo: 0xaf39a475506a899e, hi: 0xda7f5bf590966848}, // exp10 = -243, index 99
	{lo: 0x6d8406c952429603, hi: 0x888f99797a5e012d}, // exp10 = -242, index 100
	{lo: 0xc8e5087ba6d33b83, hi: 0xaab37fd7d8f58178}, // exp10 = -241, index 101
	{lo: 0xfb1e4a9a90880a64, hi: 0xd5605fcdcf32e1d6}, // exp10 = -240, index 102
	{lo: 0x5cf2eea09a55067f, hi: 0x855c3be0a17fcd26}, // exp10 = -239, index 103
	{lo: 0xf42faa48c0ea481e, hi: 0xa6b34ad8c9dfc06f}, // exp10 = -238, index 104
	{lo: 0xf13b94daf124da26, hi: 0xd0601d8efc57b08b}, // exp10 = -237, index 105
	{lo: 0x76c53d08d6b70858, hi: 0x823c12795db6ce57}, // exp10 = -236, index 106
	{lo: 0x54768c4b0c64ca6e, hi: 0xa2cb1717b52481ed}, // exp10 = -235, index 107
	{lo: 0xa9942f5dcf7dfd09, hi: 0xcb7ddcdda26da268}, // exp10 = -234, index 108
	{lo: 0xd3f93b35435d7c4c, hi: 0xfe5d54150b090b02}, // exp10 = -233, index 109
	{lo: 0xc47bc5014a1a6daf, hi: 0x9efa548d26e5a6e1}, // exp10 = -232, index 110
	{lo: 0x359ab6419ca1091b, hi: 0xc6b8e9b0709f109a}, // exp10 = -231, index 111
	{lo: 0xc30163d203c94b62, hi: 0xf867241c8cc6d4c0}, // exp10 = -230, index 112
	{lo: 0x79e0de63425dcf1d, hi: 0x9b407691d7fc44f8}, // exp10 = -229, index 113
	{lo: 0x985915fc12f542e4, hi: 0xc21094364dfb5636}, // exp10 = -228, index 114
	{lo: 0x3e6f5b7b17b2939d, hi: 0xf294b943e17a2bc4}, // exp10 = -227, index 115
	{lo: 0xa705992ceecf9c42, hi: 0x979cf3ca6cec5b5a}, // exp10 = -226, index 116
	{lo: 0x50c6ff782a838353, hi: 0xbd8430bd08277231}, // exp10 = -225, index 117
	{lo: 0xa4f8bf5635246428, hi: 0xece53cec4a314ebd}, // exp10 = -224, index 118
	{lo: 0x871b7795e136be99, hi: 0x940f4613ae5ed136}, // exp10 = -223, index 119
	{lo: 0x28e2557b59846e3f, hi: 0xb913179899f68584}, // exp10 = -222, index 120
	{lo: 0x331aeada2fe589cf, hi: 0xe757dd7ec07426e5}, // exp10 = -221, index 121
	{lo: 0x3ff0d2c85def7621, hi: 0x9096ea6f3848984f}, // exp10 = -220, index 122
	{lo: 0x0fed077a756b53a9, hi: 0xb4bca50b065abe63}, // exp10 = -219, index 123
	{lo: 0xd3e8495912c62894, hi: 0xe1ebce4dc7f16dfb}, // exp10 = -218, index 124
	{lo: 0x64712dd7abbbd95c, hi: 0x8d3360f09cf6e4bd}, // exp10 = -217, index 125
	{lo: 0xbd8d794d96aacfb3, hi: 0xb080392cc4349dec}, // exp10 = -216, index 126
	{lo: 0xecf0d7a0fc5583a0, hi: 0xdca04777f541c567}, // exp10 = -215, index 127
	{lo: 0xf41686c49db57244, hi: 0x89e42caaf9491b60}, // exp10 = -214, index 128
	{lo: 0x311c2875c522ced5, hi: 0xac5d37d5b79b6239}, // exp10 = -213, index 129
	{lo: 0x7d633293366b828b, hi: 0xd77485cb25823ac7}, // exp10 = -212, index 130
	{lo: 0xae5dff9c02033197, hi: 0x86a8d39ef77164bc}, // exp10 = -211, index 131
	{lo: 0xd9f57f830283fdfc, hi: 0xa8530886b54dbdeb}, // exp10 = -210, index 132
	{lo: 0xd072df63c324fd7b, hi: 0xd267caa862a12d66}, // exp10 = -209, index 133
	{lo: 0x4247cb9e59f71e6d, hi: 0x8380dea93da4bc60}, // exp10 = -208, index 134
	{lo: 0x52d9be85f074e608, hi: 0xa46116538d0deb78}, // exp10 = -207, index 135
	{lo: 0x67902e276c921f8b, hi: 0xcd795be870516656}, // exp10 = -206, index 136
	{lo: 0x00ba1cd8a3db53b6, hi: 0x806bd9714632dff6}, // exp10 = -205, index 137
	{lo: 0x80e8a40eccd228a4, hi: 0xa086cfcd97bf97f3}, // exp10 = -204, index 138
	{lo: 0x6122cd128006b2cd, hi: 0xc8a883c0fdaf7df0}, // exp10 = -203, index 139
	{lo: 0x796b805720085f81, hi: 0xfad2a4b13d1b5d6c}, // exp10 = -202, index 140
	{lo: 0xcbe3303674053bb0, hi: 0x9cc3a6eec6311a63}, // exp10 = -201, index 141
	{lo: 0xbedbfc4411068a9c, hi: 0xc3f490aa77bd60fc}, // exp10 = -200, index 142
	{lo: 0xee92fb5515482d44, hi: 0xf4f1b4d515acb93b}, // exp10 = -199, index 143
	{lo: 0x751bdd152d4d1c4a, hi: 0x991711052d8bf3c5}, // exp10 = -198, index 144
	{lo: 0xd262d45a78a0635d, hi: 0xbf5cd54678eef0b6}, // exp10 = -197, index 145
	{lo: 0x86fb897116c87c34, hi: 0xef340a98172aace4}, // exp10 = -196, index 146
	{lo: 0xd45d35e6ae3d4da0, hi: 0x9580869f0e7aac0e}, // exp10 = -195, index 147
	{lo: 0x8974836059cca109, hi: 0xbae0a846d2195712}, // exp10 = -194, index 148
	{lo: 0x2bd1a438703fc94b, hi: 0xe998d258869facd7}, // exp10 = -193, index 149
	{lo: 0x7b6306a34627ddcf, hi: 0x91ff83775423cc06}, // exp10 = -192, index 150
	{lo: 0x1a3bc84c17b1d542, hi: 0xb67f6455292cbf08}, // exp10 = -191, index 151
	{lo: 0x20caba5f1d9e4a93, hi: 0xe41f3d6a7377eeca}, // exp10 = -190, index 152
	{lo: 0x547eb47b7282ee9c, hi: 0x8e938662882af53e}, // exp10 = -189, index 153
	{lo: 0xe99e619a4f23aa43, hi: 0xb23867fb2a35b28d}, // exp10 = -188, index 154
	{lo: 0x6405fa00e2ec94d4, hi: 0xdec681f9f4c31f31}, // exp10 = -187, index 155
	{lo: 0xde83bc408dd3dd04, hi: 0x8b3c113c38f9f37e}, // exp10 = -186, index 156
	{lo: 0x9624ab50b148d445, hi: 0xae0b158b4738705e}, // exp10 = -185, index 157
	{lo: 0x3badd624dd9b0957, hi: 0xd98ddaee19068c76}, // exp10 = -184, index 158
	{lo: 0xe54ca5d70a80e5d6, hi: 0x87f8a8d4cfa417c9}, // exp10 = -183, index 159
	{lo: 0x5e9fcf4ccd211f4c, hi: 0xa9f6d30a038d1dbc}, // exp10 = -182, index 160
	{lo: 0x7647c3200069671f, hi: 0xd47487cc8470652b}, // exp10 = -181, index 161
	{lo: 0x29ecd9f40041e073, hi: 0x84c8d4dfd2c63f3b}, // exp10 = -180, index 162
	{lo: 0xf468107100525890, hi: 0xa5fb0a17c777cf09}, // exp10 = -179, index 163
	{lo: 0x7182148d4066eeb4, hi: 0xcf79cc9db955c2cc}, // exp10 = -178, index 164
	{lo: 0xc6f14cd848405530, hi: 0x81ac1fe293d599bf}, // exp10 = -177, index 165
	{lo: 0xb8ada00e5a506a7c, hi: 0xa21727db38cb002f}, // exp10 = -176, index 166
	{lo: 0xa6d90811f0e4851c, hi: 0xca9cf1d206fdc03b}, // exp10 = -175, index 167
	{lo: 0x908f4a166d1da663, hi: 0xfd442e4688bd304a}, // exp10 = -174, index 168
	{lo: 0x9a598e4e043287fe, hi: 0x9e4a9cec15763e2e}, // exp10 = -173, index 169
	{lo: 0x40eff1e1853f29fd, hi: 0xc5dd44271ad3cdba}, // exp10 = -172, index 170
	{lo: 0xd12bee59e68ef47c, hi: 0xf7549530e188c128}, // exp10 = -171, index 171
	{lo: 0x82bb74f8301958ce, hi: 0x9a94dd3e8cf578b9}, // exp10 = -170, index 172
	{lo: 0xe36a52363c1faf01, hi: 0xc13a148e3032d6e7}, // exp10 = -169, index 173
	{lo: 0xdc44e6c3cb279ac1, hi: 0xf18899b1bc3f8ca1}, // exp10 = -168, index 174
	{lo: 0x29ab103a5ef8c0b9, hi: 0x96f5600f15a7b7e5}, // exp10 = -167, index 175
	{lo: 0x7415d448f6b6f0e7, hi: 0xbcb2b812db11a5de}, // exp10 = -166, index 176
	{lo: 0x111b495b3464ad21, hi: 0xebdf661791d60f56}, // exp10 = -165, index 177
	{lo: 0xcab10dd900beec34, hi: 0x936b9fcebb25c995}, // exp10 = -164, index 178
	{lo: 0x3d5d514f40eea742, hi: 0xb84687c269ef3bfb}, // exp10 = -163, index 179
	{lo: 0x0cb4a5a3112a5112, hi: 0xe65829b3046b0afa}, // exp10 = -162, index 180
	{lo: 0x47f0e785eaba72ab, hi: 0x8ff71a0fe2c2e6dc}, // exp10 = -161, index 181
	{lo: 0x59ed216765690f56, hi: 0xb3f4e093db73a093}, // exp10 = -160, index 182
	{lo: 0x306869c13ec3532c, hi: 0xe0f218b8d25088b8}, // exp10 = -159, index 183
	{lo: 0x1e414218c73a13fb, hi: 0x8c974f7383725573}, // exp10 = -158, index 184
	{lo: 0xe5d1929ef90898fa, hi: 0xafbd2350644eeacf}, // exp10 = -157, index 185
	{lo: 0xdf45f746b74abf39, hi: 0xdbac6c247d62a583}, // exp10 = -156, index 186
	{lo: 0x6b8bba8c328eb783, hi: 0x894bc396ce5da772}, // exp10 = -155, index 187
	{lo: 0x066ea92f3f326564, hi: 0xab9eb47c81f5114f}, // exp10 = -154, index 188
	{lo: 0xc80a537b0efefebd, hi: 0xd686619ba27255a2}, // exp10 = -153, index 189
	{lo: 0xbd06742ce95f5f36, hi: 0x8613fd0145877585}, // exp10 = -152, index 190
	{lo: 0x2c48113823b73704, hi: 0xa798fc4196e952e7}, // exp10 = -151, index 191
	{lo: 0xf75a15862ca504c5, hi: 0xd17f3b51fca3a7a0}, // exp10 = -150, index 192
	{lo: 0x9a984d73dbe722fb, hi: 0x82ef85133de648c4}, // exp10 = -149, index 193
	{lo: 0xc13e60d0d2e0ebba, hi: 0xa3ab66580d5fdaf5}, // exp10 = -148, index 194
	{lo: 0x318df905079926a8, hi: 0xcc963fee10b7d1b3}, // exp10 = -147, index 195
	{lo: 0xfdf17746497f7052, hi: 0xffbbcfe994e5c61f}, // exp10 = -146, index 196
	{lo: 0xfeb6ea8bedefa633, hi: 0x9fd561f1fd0f9bd3}, // exp10 = -145, index 197
	{lo: 0xfe64a52ee96b8fc0, hi: 0xc7caba6e7c5382c8}, // exp10 = -144, index 198
	{lo: 0x3dfdce7aa3c673b0, hi: 0xf9bd690a1b68637b}, // exp10 = -143, index 199
	{lo: 0x06bea10ca65c084e, hi: 0x9c1661a651213e2d}, // exp10 = -142, index 200
	{lo: 0x486e494fcff30a62, hi: 0xc31bfa0fe5698db8}, // exp10 = -141, index 201
	{lo: 0x5a89dba3c3efccfa, hi: 0xf3e2f893dec3f126}, // exp10 = -140, index 202
	{lo: 0xf89629465a75e01c, hi: 0x986ddb5c6b3a76b7}, // exp10 = -139, index 203
	{lo: 0xf6bbb397f1135823, hi: 0xbe89523386091465}, // exp10 = -138, index 204
	{lo: 0x746aa07ded582e2c, hi: 0xee2ba6c0678b597f}, // exp10 = -137, index 205
	{lo: 0xa8c2a44eb4571cdc, hi: 0x94db483840b717ef}, // exp10 = -136, index 206
	{lo: 0x92f34d62616ce413, hi: 0xba121a4650e4ddeb}, // exp10 = -135, index 207
	{lo: 0x77b020baf9c81d17, hi: 0xe896a0d7e51e1566}, // exp10 = -134, index 208
	{lo: 0x0ace1474dc1d122e, hi: 0x915e2486ef32cd60}, // exp10 = -133, index 209
	{lo: 0x0d819992132456ba, hi: 0xb5b5ada8aaff80b8}, // exp10 = -132, index 210
	{lo: 0x10e1fff697ed6c69, hi: 0xe3231912d5bf60e6}, // exp10 = -131, index 211
	{lo: 0xca8d3ffa1ef463c1, hi: 0x8df5efabc5979c8f}, // exp10 = -130, index 212
	{lo: 0xbd308ff8a6b17cb2, hi: 0xb1736b96b6fd83b3}, // exp10 = -129, index 213
	{lo: 0xac7cb3f6d05ddbde, hi: 0xddd0467c64bce4a0}, // exp10 = -128, index 214
	{lo: 0x6bcdf07a423aa96b, hi: 0x8aa22c0dbef60ee4}, // exp10 = -127, index 215
	{lo: 0x86c16c98d2c953c6, hi: 0xad4ab7112eb3929d}, // exp10 = -126, index 216
	{lo: 0xe871c7bf077ba8b7, hi: 0xd89d64d57a607744}, // exp10 = -125, index 217
	{lo: 0x11471cd764ad4972, hi: 0x87625f056c7c4a8b}, // exp10 = -124, index 218
	{lo: 0xd598e40d3dd89bcf, hi: 0xa93af6c6c79b5d2d}, // exp10 = -123, index 219
	{lo: 0x4aff1d108d4ec2c3, hi: 0xd389b47879823479}, // exp10 = -122, index 220
	{lo: 0xcedf722a585139ba, hi: 0x843610cb4bf160cb}, // exp10 = -121, index 221
	{lo: 0xc2974eb4ee658828, hi: 0xa54394fe1eedb8fe}, // exp10 = -120, index 222
	{lo: 0x733d226229feea32, hi: 0xce947a3da6a9273e}, // exp10 = -119, index 223
	{lo: 0x0806357d5a3f525f, hi: 0x811ccc668829b887}, // exp10 = -118, index 224
	{lo: 0xca07c2dcb0cf26f7, hi: 0xa163ff802a3426a8}, // exp10 = -117, index 225
	{lo: 0xfc89b393dd02f0b5, hi: 0xc9bcff6034c13052}, // exp10 = -116, index 226
	{lo: 0xbbac2078d443ace2, hi: 0xfc2c3f3841f17c67}, // exp10 = -115, index 227
	{lo: 0xd54b944b84aa4c0d, hi: 0x9d9ba7832936edc0}, // exp10 = -114, index 228
	{lo: 0x0a9e795e65d4df11, hi: 0xc5029163f384a931}, // exp10 = -113, index 229
	{lo: 0x4d4617b5ff4a16d5, hi: 0xf64335bcf065d37d}, // exp10 = -112, index 230
	{lo: 0x504bced1bf8e4e45, hi: 0x99ea0196163fa42e}, // exp10 = -111, index 231
	{lo: 0xe45ec2862f71e1d6, hi: 0xc06481fb9bcf8d39}, // exp10 = -110, index 232
	{lo: 0x5d767327bb4e5a4c, hi: 0xf07da27a82c37088}, // exp10 = -109, index 233
	{lo: 0x3a6a07f8d510f86f, hi: 0x964e858c91ba2655}, // exp10 = -108, index 234
	{lo: 0x890489f70a55368b, hi: 0xbbe226efb628afea}, // exp10 = -107, index 235
	{lo: 0x2b45ac74ccea842e, hi: 0xeadab0aba3b2dbe5}, // exp10 = -106, index 236
	{lo: 0x3b0b8bc90012929d, hi: 0x92c8ae6b464fc96f}, // exp10 = -105, index 237
	{lo: 0x09ce6ebb40173744, hi: 0xb77ada0617e3bbcb}, // exp10 = -104, index 238
	{lo: 0xcc420a6a101d0515, hi: 0xe55990879ddcaabd}, // exp10 = -103, index 239
	{lo: 0x9fa946824a12232d, hi: 0x8f57fa54c2a9eab6}, // exp10 = -102, index 240
	{lo: 0x47939822dc96abf9, hi: 0xb32df8e9f3546564}, // exp10 = -101, index 241
	{lo: 0x59787e2b93bc56f7, hi: 0xdff9772470297ebd}, // exp10 = -100, index 242
	{lo: 0x57eb4edb3c55b65a, hi: 0x8bfbea76c619ef36}, // exp10 = -99, index 243
	{lo: 0xede622920b6b23f1, hi: 0xaefae51477a06b03}, // exp10 = -98, index 244
	{lo: 0xe95fab368e45eced, hi: 0xdab99e59958885c4}, // exp10 = -97, index 245
	{lo: 0x11dbcb0218ebb414, hi: 0x88b402f7fd75539b}, // exp10 = -96, index 246
	{lo: 0xd652bdc29f26a119, hi: 0xaae103b5fcd2a881}, // exp10 = -95, index 247
	{lo: 0x4be76d3346f0495f, hi: 0xd59944a37c0752a2}, // exp10 = -94, index 248
	{lo: 0x6f70a4400c562ddb, hi: 0x857fcae62d8493a5}, // exp10 = -93, index 249
	{lo: 0xcb4ccd500f6bb952, hi: 0xa6dfbd9fb8e5b88e}, // exp10 = -92, index 250
	{lo: 0x7e2000a41346a7a7, hi: 0xd097ad07a71f26b2}, // exp10 = -91, index 251
	{lo: 0x8ed400668c0c28c8, hi: 0x825ecc24c873782f}, // exp10 = -90, index 252
	{lo: 0x728900802f0f32fa, hi: 0xa2f67f2dfa90563b}, // exp10 = -89, index 253
	{lo: 0x4f2b40a03ad2ffb9, hi: 0xcbb41ef979346bca}, // exp10 = -88, index 254
	{lo: 0xe2f610c84987bfa8, hi: 0xfea126b7d78186bc}, // exp10 = -87, index 255
	{lo: 0x0dd9ca7d2df4d7c9, hi: 0x9f24b832e6b0f436}, // exp10 = -86, index 256
	{lo: 0x91503d1c79720dbb, hi: 0xc6ede63fa05d3143}, // exp10 = -85, index 257
	{lo: 0x75a44c6397ce912a, hi: 0xf8a95fcf88747d94}, // exp10 = -84, index 258
	{lo: 0xc986afbe3ee11aba, hi: 0x9b69dbe1b548ce7c}, // exp10 = -83, index 259
	{lo: 0xfbe85badce996168, hi: 0xc24452da229b021b}, // exp10 = -82, index 260
	{lo: 0xfae27299423fb9c3, hi: 0xf2d56790ab41c2a2}, // exp10 = -81, index 261
	{lo: 0xdccd879fc967d41a, hi: 0x97c560ba6b0919a5}, // exp10 = -80, index 262
	{lo: 0x5400e987bbc1c920, hi: 0xbdb6b8e905cb600f}, // exp10 = -79, index 263
	{lo: 0x290123e9aab23b68, hi: 0xed246723473e3813}, // exp10 = -78, index 264
	{lo: 0xf9a0b6720aaf6521, hi: 0x9436c0760c86e30b}, // exp10 = -77, index 265
	{lo: 0xf808e40e8d5b3e69, hi: 0xb94470938fa89bce}, // exp10 = -76, index 266
	{lo: 0xb60b1d1230b20e04, hi: 0xe7958cb87392c2c2}, // exp10 = -75, index 267
	{lo: 0xb1c6f22b5e6f48c2, hi: 0x90bd77f3483bb9b9}, // exp10 = -74, index 268
	{lo: 0x1e38aeb6360b1af3, hi: 0xb4ecd5f01a4aa828}, // exp10 = -73, index 269
	{lo: 0x25c6da63c38de1b0, hi: 0xe2280b6c20dd5232}, // exp10 = -72, index 270
	{lo: 0x579c487e5a38ad0e, hi: 0x8d590723948a535f}, // exp10 = -71, index 271
	{lo: 0x2d835a9df0c6d851, hi: 0xb0af48ec79ace837}, // exp10 = -70, index 272
	{lo: 0xf8e431456cf88e65, hi: 0xdcdb1b2798182244}, // exp10 = -69, index 273
	{lo: 0x1b8e9ecb641b58ff, hi: 0x8a08f0f8bf0f156b}, // exp10 = -68, index 274
	{lo: 0xe272467e3d222f3f, hi: 0xac8b2d36eed2dac5}, // exp10 = -67, index 275
	{lo: 0x5b0ed81dcc6abb0f, hi: 0xd7adf884aa879177}, // exp10 = -66, index 276
	{lo: 0x98e947129fc2b4e9, hi: 0x86ccbb52ea94baea}, // exp10 = -65, index 277
	{lo: 0x3f2398d747b36224, hi: 0xa87fea27a539e9a5}, // exp10 = -64, index 278
	{lo: 0x8eec7f0d19a03aad, hi: 0xd29fe4b18e88640e}, // exp10 = -63, index 279
	{lo: 0x1953cf68300424ac, hi: 0x83a3eeeef9153e89}, // exp10 = -62, index 280
	{lo: 0x5fa8c3423c052dd7, hi: 0xa48ceaaab75a8e2b}, // exp10 = -61, index 281
	{lo: 0x3792f412cb06794d, hi: 0xcdb02555653131b6}, // exp10 = -60, index 282
	{lo: 0xe2bbd88bbee40bd0, hi: 0x808e17555f3ebf11}, // exp10 = -59, index 283
	{lo: 0x5b6aceaeae9d0ec4, hi: 0xa0b19d2ab70e6ed6}, // exp10 = -58, index 284
	{lo: 0xf245825a5a445275, hi: 0xc8de047564d20a8b}, // exp10 = -57, index 285
	{lo: 0xeed6e2f0f0d56712, hi: 0xfb158592be068d2e}, // exp10 = -56, index 286
	{lo: 0x55464dd69685606b, hi: 0x9ced737bb6c4183d}, // exp10 = -55, index 287
	{lo: 0xaa97e14c3c26b886, hi: 0xc428d05aa4751e4c}, // exp10 = -54, index 288
	{lo: 0xd53dd99f4b3066a8, hi: 0xf53304714d9265df}, // exp10 = -53, index 289
	{lo: 0xe546a8038efe4029, hi: 0x993fe2c6d07b7fab}, // exp10 = -52, index 290
	{lo: 0xde98520472bdd033, hi: 0xbf8fdb78849a5f96}, // exp10 = -51, index 291
	{lo: 0x963e66858f6d4440, hi: 0xef73d256a5c0f77c}, // exp10 = -50, index 292
	{lo: 0xdde7001379a44aa8, hi: 0x95a8637627989aad}, // exp10 = -49, index 293
	{lo: 0x5560c018580d5d52, hi: 0xbb127c53b17ec159}, // exp10 = -48, index 294
	{lo: 0xaab8f01e6e10b4a6, hi: 0xe9d71b689dde71af}, // exp10 = -47, index 295
	{lo: 0xcab3961304ca70e8, hi: 0x9226712162ab070d}, // exp10 = -46, index 296
	{lo: 0x3d607b97c5fd0d22, hi: 0xb6b00d69bb55c8d1}, // exp10 = -45, index 297
	{lo: 0x8cb89a7db77c506a, hi: 0xe45c10c42a2b3b05}, // exp10 = -44, index 298
	{lo: 0x77f3608e92adb242, hi: 0x8eb98a7a9a5b04e3}, // exp10 = -43, index 299
	{lo: 0x55f038b237591ed3, hi: 0xb267ed1940f1c61c}, // exp10 = -42, index 300
	{lo: 0x6b6c46dec52f6688, hi: 0xdf01e85f912e37a3}, // exp10 = -41, index 301
	{lo: 0x2323ac4b3b3da015, hi: 0x8b61313bbabce2c6}, // exp10 = -40, index 302
	{lo: 0xabec975e0a0d081a, hi: 0xae397d8aa96c1b77}, // exp10 = -39, index 303
	{lo: 0x96e7bd358c904a21, hi: 0xd9c7dced53c72255}, // exp10 = -38, index 304
	{lo: 0x7e50d64177da2e54, hi: 0x881cea14545c7575}, // exp10 = -37, index 305
	{lo: 0xdde50bd1d5d0b9e9, hi: 0xaa242499697392d2}, // exp10 = -36, index 306
	{lo: 0x955e4ec64b44e864, hi: 0xd4ad2dbfc3d07787}, // exp10 = -35, index 307
	{lo: 0xbd5af13bef0b113e, hi: 0x84ec3c97da624ab4}, // exp10 = -34, index 308
	{lo: 0xecb1ad8aeacdd58e, hi: 0xa6274bbdd0fadd61}, // exp10 = -33, index 309
	{lo: 0x67de18eda5814af2, hi: 0xcfb11ead453994ba}, // exp10 = -32, index 310
	{lo: 0x80eacf948770ced7, hi: 0x81ceb32c4b43fcf4}, // exp10 = -31, index 311
	{lo: 0xa1258379a94d028d, hi: 0xa2425ff75e14fc31}, // exp10 = -30, index 312
	{lo: 0x096ee45813a04330, hi: 0xcad2f7f5359a3b3e}, // exp10 = -29, index 313
	{lo: 0x8bca9d6e188853fc, hi: 0xfd87b5f28300ca0d}, // exp10 = -28, index 314
	{lo: 0x775ea264cf55347d, hi: 0x9e74d1b791e07e48}, // exp10 = -27, index 315
	{lo: 0x95364afe032a819d, hi: 0xc612062576589dda}, // exp10 = -26, index 316
	{lo: 0x3a83ddbd83f52204, hi: 0xf79687aed3eec551}, // exp10 = -25, index 317
	{lo: 0xc4926a9672793542, hi: 0x9abe14cd44753b52}, // exp10 = -24, index 318
	{lo: 0x75b7053c0f178293, hi: 0xc16d9a0095928a27}, // exp10 = -23, index 319
	{lo: 0x5324c68b12dd6338, hi: 0xf1c90080baf72cb1}, // exp10 = -22, index 320
	{lo: 0xd3f6fc16ebca5e03, hi: 0x971da05074da7bee}, // exp10 = -21, index 321
	{lo: 0x88f4bb1ca6bcf584, hi: 0xbce5086492111aea}, // exp10 = -20, index 322
	{lo: 0x2b31e9e3d06c32e5, hi: 0xec1e4a7db69561a5}, // exp10 = -19, index 323
	{lo: 0x3aff322e62439fcf, hi: 0x9392ee8e921d5d07}, // exp10 = -18, index 324
	{lo: 0x09befeb9fad487c2, hi: 0xb877aa3236a4b449}, // exp10 = -17, index 325
	{lo: 0x4c2ebe687989a9b3, hi: 0xe69594bec44de15b}, // exp10 = -16, index 326
	{lo: 0x0f9d37014bf60a10, hi: 0x901d7cf73ab0acd9}, // exp10 = -15, index 327
	{lo: 0x538484c19ef38c94, hi: 0xb424dc35095cd80f}, // exp10 = -14, index 328
	{lo: 0x2865a5f206b06fb9, hi: 0xe12e13424bb40e13}, // exp10 = -13, index 329
	{lo: 0xf93f87b7442e45d3, hi: 0x8cbccc096f5088cb}, // exp10 = -12, index 330
	{lo: 0xf78f69a51539d748, hi: 0xafebff0bcb24aafe}, // exp10 = -11, index 331
	{lo: 0xb573440e5a884d1b, hi: 0xdbe6fecebdedd5be}, // exp10 = -10, index 332
	{lo: 0x31680a88f8953030, hi: 0x89705f4136b4a597}, // exp10 = -9, index 333
	{lo: 0xfdc20d2b36ba7c3d, hi: 0xabcc77118461cefc}, // exp10 = -8, index 334
	{lo: 0x3d32907604691b4c, hi: 0xd6bf94d5e57a42bc}, // exp10 = -7, index 335
	{lo: 0xa63f9a49c2c1b10f, hi: 0x8637bd05af6c69b5}, // exp10 = -6, index 336
	{lo: 0x0fcf80dc33721d53, hi: 0xa7c5ac471b478423}, // exp10 = -5, index 337
	{lo: 0xd3c36113404ea4a8, hi: 0xd1b71758e219652b}, // exp10 = -4, index 338
	{lo: 0x645a1cac083126e9, hi: 0x83126e978d4fdf3b}, // exp10 = -3, index 339
	{lo: 0x3d70a3d70a3d70a3, hi: 0xa3d70a3d70a3d70a}, // exp10 = -2, index 340
	{lo: 0xcccccccccccccccc, hi: 0xcccccccccccccccc}, // exp10 = -1, index 341
	{lo: 0x0000000000000000, hi: 0x8000000000000000}, // exp10 = 0, index 342
	{lo: 0x0000000000000000, hi: 0xa000000000000000}, // exp10 = 1, index 343
	{lo: 0x0000000000000000, hi: 0xc800000000000000}, // exp10 = 2, index 344
	{lo: 0x0000000000000000, hi: 0xfa00000000000000}, // exp10 = 3, index 345
	{lo: 0x0000000000000000, hi: 0x9c40000000000000}, // exp10 = 4, index 346
	{lo: 0x0000000000000000, hi: 0xc350000000000000}, // exp10 = 5, index 347
	{lo: 0x0000000000000000, hi: 0xf424000000000000}, // exp10 = 6, index 348
	{lo: 0x0000000000000000, hi: 0x9896800000000000}, // exp10 = 7, index 349
	{lo: 0x0000000000000000, hi: 0xbebc200000000000}, // exp10 = 8, index 350
	{lo: 0x0000000000000000, hi: 0xee6b280000000000}, // exp10 = 9, index 351
	{lo: 0x0000000000000000, hi: 0x9502f90000000000}, // exp10 = 10, index 352
	{lo: 0x0000000000000000, hi: 0xba43b74000000000}, // exp10 = 11, index 353
	{lo: 0x0000000000000000, hi: 0xe8d4a51000000000}, // exp10 = 12, index 354
	{lo: 0x0000000000000000, hi: 0x9184e72a00000000}, // exp10 = 13, index 355
	{lo: 0x0000000000000000, hi: 0xb5e620f480000000}, // exp10 = 14, index 356
	{lo: 0x0000000000000000, hi: 0xe35fa931a0000000}, // exp10 = 15, index 357
	{lo: 0x0000000000000000, hi: 0x8e1bc9bf04000000}, // exp10 = 16, index 358
	{lo: 0x0000000000000000, hi: 0xb1a2bc2ec5000000}, // exp10 = 17, index 359
	{lo: 0x0000000000000000, hi: 0xde0b6b3a76400000}, // exp10 = 18, index 360
	{lo: 0x0000000000000000, hi: 0x8ac7230489e80000}, // exp10 = 19, index 361
	{lo: 0x0000000000000000, hi: 0xad78ebc5ac620000}, // exp10 = 20, index 362
	{lo: 0x0000000000000000, hi: 0xd8d726b7177a8000}, // exp10 = 21, index 363
	{lo: 0x0000000000000000, hi: 0x878678326eac9000}, // exp10 = 22, index 364
	{lo: 0x0000000000000000, hi: 0xa968163f0a57b400}, // exp10 = 23, index 365
	{lo: 0x0000000000000000, hi: 0xd3c21bcecceda100}, // exp10 = 24, index 366
	{lo: 0x0000000000000000, hi: 0x84595161401484a0}, // exp10 = 25, index 367
	{lo: 0x0000000000000000, hi: 0xa56fa5b99019a5c8}, // exp10 = 26, index 368
	{lo: 0x0000000000000000, hi: 0xcecb8f27f4200f3a}, // exp10 = 27, index 369
	{lo: 0x4000000000000000, hi: 0x813f3978f8940984}, // exp10 = 28, index 370
	{lo: 0x5000000000000000, hi: 0xa18f07d736b90be5}, // exp10 = 29, index 371
	{lo: 0xa400000000000000, hi: 0xc9f2c9cd04674ede}, // exp10 = 30, index 372
	{lo: 0x4d00000000000000, hi: 0xfc6f7c4045812296}, // exp10 = 31, index 373
	{lo: 0xf020000000000000, hi: 0x9dc5ada82b70b59d}, // exp10 = 32, index 374
	{lo: 0x6c28000000000000, hi: 0xc5371912364ce305}, // exp10 = 33, index 375
	{lo: 0xc732000000000000, hi: 0xf684df56c3e01bc6}, // exp10 = 34, index 376
	{lo: 0x3c7f400000000000, hi: 0x9a130b963a6c115c}, // exp10 = 35, index 377
	{lo: 0x4b9f100000000000, hi: 0xc097ce7bc90715b3}, // exp10 = 36, index 378
	{lo: 0x1e86d40000000000, hi: 0xf0bdc21abb48db20}, // exp10 = 37, index 379
	{lo: 0x1314448000000000, hi: 0x96769950b50d88f4}, // exp10 = 38, index 380
	{lo: 0x17d955a000000000, hi: 0xbc143fa4e250eb31}, // exp10 = 39, index 381
	{lo: 0x5dcfab0800000000, hi: 0xeb194f8e1ae525fd}, // exp10 = 40, index 382
	{lo: 0x5aa1cae500000000, hi: 0x92efd1b8d0cf37be}, // exp10 = 41, index 383
	{lo: 0xf14a3d9e40000000, hi: 0xb7abc627050305ad}, // exp10 = 42, index 384
	{lo: 0x6d9ccd05d0000000, hi: 0xe596b7b0c643c719}, // exp10 = 43, index 385
	{lo: 0xe4820023a2000000, hi: 0x8f7e32ce7bea5c6f}, // exp10 = 44, index 386
	{lo: 0xdda2802c8a800000, hi: 0xb35dbf821ae4f38b}, // exp10 = 45, index 387
	{lo: 0xd50b2037ad200000, hi: 0xe0352f62a19e306e}, // exp10 = 46, index 388
	{lo: 0x4526f422cc340000, hi: 0x8c213d9da502de45}, // exp10 = 47, index 389
	{lo: 0x9670b12b7f410000, hi: 0xaf298d050e4395d6}, // exp10 = 48, index 390
	{lo: 0x3c0cdd765f114000, hi: 0xdaf3f04651d47b4c}, // exp10 = 49, index 391
	{lo: 0xa5880a69fb6ac800, hi: 0x88d8762bf324cd0f}, // exp10 = 50, index 392
	{lo: 0x8eea0d047a457a00, hi: 0xab0e93b6efee0053}, // exp10 = 51, index 393
	{lo: 0x72a4904598d6d880, hi: 0xd5d238a4abe98068}, // exp10 = 52, index 394
	{lo: 0x47a6da2b7f864750, hi: 0x85a36366eb71f041}, // exp10 = 53, index 395
	{lo: 0x999090b65f67d924, hi: 0xa70c3c40a64e6c51}, // exp10 = 54, index 396
	{lo: 0xfff4b4e3f741cf6d, hi: 0xd0cf4b50cfe20765}, // exp10 = 55, index 397
	{lo: 0xbff8f10e7a8921a4, hi: 0x82818f1281ed449f}, // exp10 = 56, index 398
	{lo: 0xaff72d52192b6a0d, hi: 0xa321f2d7226895c7}, // exp10 = 57, index 399
	{lo: 0x9bf4f8a69f764490, hi: 0xcbea6f8ceb02bb39}, // exp10 = 58, index 400
	{lo: 0x02f236d04753d5b4, hi: 0xfee50b7025c36a08}, // exp10 = 59, index 401
	{lo: 0x01d762422c946590, hi: 0x9f4f2726179a2245}, // exp10 = 60, index 402
	{lo: 0x424d3ad2b7b97ef5, hi: 0xc722f0ef9d80aad6}, // exp10 = 61, index 403
	{lo: 0xd2e0898765a7deb2, hi: 0xf8ebad2b84e0d58b}, // exp10 = 62, index 404
	{lo: 0x63cc55f49f88eb2f, hi: 0x9b934c3b330c8577}, // exp10 = 63, index 405
	{lo: 0x3cbf6b71c76b25fb, hi: 0xc2781f49ffcfa6d5}, // exp10 = 64, index 406
	{lo: 0x8bef464e3945ef7a, hi: 0xf316271c7fc3908a}, // exp10 = 65, index 407
	{lo: 0x97758bf0e3cbb5ac, hi: 0x97edd871cfda3a56}, // exp10 = 66, index 408
	{lo: 0x3d52eeed1cbea317, hi: 0xbde94e8e43d0c8ec}, // exp10 = 67, index 409
	{lo: 0x4ca7aaa863ee4bdd, hi: 0xed63a231d4c4fb27}, // exp10 = 68, index 410
	{lo: 0x8fe8caa93e74ef6a, hi: 0x945e455f24fb1cf8}, // exp10 = 69, index 411
	{lo: 0xb3e2fd538e122b44, hi: 0xb975d6b6ee39e436}, // exp10 = 70, index 412
	{lo: 0x60dbbca87196b616, hi: 0xe7d34c64a9c85d44}, // exp10 = 71, index 413
	{lo: 0xbc8955e946fe31cd, hi: 0x90e40fbeea1d3a4a}, // exp10 = 72, index 414
	{lo: 0x6babab6398bdbe41, hi: 0xb51d13aea4a488dd}, // exp10 = 73, index 415
	{lo: 0xc696963c7eed2dd1, hi: 0xe264589a4dcdab14}, // exp10 = 74, index 416
	{lo: 0xfc1e1de5cf543ca2, hi: 0x8d7eb76070a08aec}, // exp10 = 75, index 417
	{lo: 0x3b25a55f43294bcb, hi: 0xb0de65388cc8ada8}, // exp10 = 76, index 418
	{lo: 0x49ef0eb713f39ebe, hi: 0xdd15fe86affad912}, // exp10 = 77, index 419
	{lo: 0x6e3569326c784337, hi: 0x8a2dbf142dfcc7ab}, // exp10 = 78, index 420
	{lo: 0x49c2c37f07965404, hi: 0xacb92ed9397bf996}, // exp10 = 79, index 421
	{lo: 0xdc33745ec97be906, hi: 0xd7e77a8f87daf7fb}, // exp10 = 80, index 422
	{lo: 0x69a028bb3ded71a3, hi: 0x86f0ac99b4e8dafd}, // exp10 = 81, index 423
	{lo: 0xc40832ea0d68ce0c, hi: 0xa8acd7c0222311bc}, // exp10 = 82, index 424
	{lo: 0xf50a3fa490c30190, hi: 0xd2d80db02aabd62b}, // exp10 = 83, index 425
	{lo: 0x792667c6da79e0fa, hi: 0x83c7088e1aab65db}, // exp10 = 84, index 426
	{lo: 0x577001b891185938, hi: 0xa4b8cab1a1563f52}, // exp10 = 85, index 427
	{lo: 0xed4c0226b55e6f86, hi: 0xcde6fd5e09abcf26}, // exp10 = 86, index 428
	{lo: 0x544f8158315b05b4, hi: 0x80b05e5ac60b6178}, // exp10 = 87, index 429
	{lo: 0x696361ae3db1c721, hi: 0xa0dc75f1778e39d6}, // exp10 = 88, index 430
	{lo: 0x03bc3a19cd1e38e9, hi: 0xc913936dd571c84c}, // exp10 = 89, index 431
	{lo: 0x04ab48a04065c723, hi: 0xfb5878494ace3a5f}, // exp10 = 90, index 432
	{lo: 0x62eb0d64283f9c76, hi: 0x9d174b2dcec0e47b}, // exp10 = 91, index 433
	{lo: 0x3ba5d0bd324f8394, hi: 0xc45d1df942711d9a}, // exp10 = 92, index 434
	{lo: 0xca8f44ec7ee36479, hi: 0xf5746577930d6500}, // exp10 = 93, index 435
	{lo: 0x7e998b13cf4e1ecb, hi: 0x9968bf6abbe85f20}, // exp10 = 94, index 436
	{lo: 0x9e3fedd8c321a67e, hi: 0xbfc2ef456ae276e8}, // exp10 = 95, index 437
	{lo: 0xc5cfe94ef3ea101e, hi: 0xefb3ab16c59b14a2}, // exp10 = 96, index 438
	{lo: 0xbba1f1d158724a12, hi: 0x95d04aee3b80ece5}, // exp10 = 97, index 439
	{lo: 0x2a8a6e45ae8edc97, hi: 0xbb445da9ca61281f}, // exp10 = 98, index 440
	{lo: 0xf52d09d71a3293bd, hi: 0xea1575143cf97226}, // exp10 = 99, index 441
	{lo: 0x593c2626705f9c56, hi: 0x924d692ca61be758}, // exp10 = 100, index 442
	{lo: 0x6f8b2fb00c77836c, hi: 0xb6e0c377cfa2e12e}, // exp10 = 101, index 443
	{lo: 0x0b6dfb9c0f956447, hi: 0xe498f455c38b997a}, // exp10 = 102, index 444
	{lo: 0x4724bd4189bd5eac, hi: 0x8edf98b59a373fec}, // exp10 = 103, index 445
	{lo: 0x58edec91ec2cb657, hi: 0xb2977ee300c50fe7}, // exp10 = 104, index 446
	{lo: 0x2f2967b66737e3ed, hi: 0xdf3d5e9bc0f653e1}, // exp10 = 105, index 447
	{lo: 0xbd79e0d20082ee74, hi: 0x8b865b215899f46c}, // exp10 = 106, index 448
	{lo: 0xecd8590680a3aa11, hi: 0xae67f1e9aec07187}, // exp10 = 107, index 449
	{lo: 0xe80e6f4820cc9495, hi: 0xda01ee641a708de9}, // exp10 = 108, index 450
	{lo: 0x3109058d147fdcdd, hi: 0x884134fe908658b2}, // exp10 = 109, index 451
	{lo: 0xbd4b46f0599fd415, hi: 0xaa51823e34a7eede}, // exp10 = 110, index 452
	{lo: 0x6c9e18ac7007c91a, hi: 0xd4e5e2cdc1d1ea96}, // exp10 = 111, index 453
	{lo: 0x03e2cf6bc604ddb0, hi: 0x850fadc09923329e}, // exp10 = 112, index 454
	{lo: 0x84db8346b786151c, hi: 0xa6539930bf6bff45}, // exp10 = 113, index 455
	{lo: 0xe612641865679a63, hi: 0xcfe87f7cef46ff16}, // exp10 = 114, index 456
	{lo: 0x4fcb7e8f3f60c07e, hi: 0x81f14fae158c5f6e}, // exp10 = 115, index 457
	{lo: 0xe3be5e330f38f09d, hi: 0xa26da3999aef7749}, // exp10 = 116, index 458
	{lo: 0x5cadf5bfd3072cc5, hi: 0xcb090c8001ab551c}, // exp10 = 117, index 459
	{lo: 0x73d9732fc7c8f7f6, hi: 0xfdcb4fa002162a63}, // exp10 = 118, index 460
	{lo: 0x2867e7fddcdd9afa, hi: 0x9e9f11c4014dda7e}, // exp10 = 119, index 461
	{lo: 0xb281e1fd541501b8, hi: 0xc646d63501a1511d}, // exp10 = 120, index 462
	{lo: 0x1f225a7ca91a4226, hi: 0xf7d88bc24209a565}, // exp10 = 121, index 463
	{lo: 0x3375788de9b06958, hi: 0x9ae757596946075f}, // exp10 = 122, index 464
	{lo: 0x0052d6b1641c83ae, hi: 0xc1a12d2fc3978937}, // exp10 = 123, index 465
	{lo: 0xc0678c5dbd23a49a, hi: 0xf209787bb47d6b84}, // exp10 = 124, index 466
	{lo: 0xf840b7ba963646e0, hi: 0x9745eb4d50ce6332}, // exp10 = 125, index 467
	{lo: 0xb650e5a93bc3d898, hi: 0xbd176620a501fbff}, // exp10 = 126, index 468
	{lo: 0xa3e51f138ab4cebe, hi: 0xec5d3fa8ce427aff}, // exp10 = 127, index 469
	{lo: 0xc66f336c36b10137, hi: 0x93ba47c980e98cdf}, // exp10 = 128, index 470
	{lo: 0xb80b0047445d4184, hi: 0xb8a8d9bbe123f017}, // exp10 = 129, index 471
	{lo: 0xa60dc059157491e5, hi: 0xe6d3102ad96cec1d}, // exp10 = 130, index 472
	{lo: 0x87c89837ad68db2f, hi: 0x9043ea1ac7e41392}, // exp10 = 131, index 473
	{lo: 0x29babe4598c311fb, hi: 0xb454e4a179dd1877}, // exp10 = 132, index 474
	{lo: 0xf4296dd6fef3d67a, hi: 0xe16a1dc9d8545e94}, // exp10 = 133, index 475
	{lo: 0x1899e4a65f58660c, hi: 0x8ce2529e2734bb1d}, // exp10 = 134, index 476
	{lo: 0x5ec05dcff72e7f8f, hi: 0xb01ae745b101e9e4}, // exp10 = 135, index 477
	{lo: 0x76707543f4fa1f73, hi: 0xdc21a1171d42645d}, // exp10 = 136, index 478
	{lo: 0x6a06494a791c53a8, hi: 0x899504ae72497eba}, // exp10 = 137, index 479
	{lo: 0x0487db9d17636892, hi: 0xabfa45da0edbde69}, // exp10 = 138, index 480
	{lo: 0x45a9d2845d3c42b6, hi: 0xd6f8d7509292d603}, // exp10 = 139, index 481
	{lo: 0x0b8a2392ba45a9b2, hi: 0x865b86925b9bc5c2}, // exp10 = 140, index 482
	{lo: 0x8e6cac7768d7141e, hi: 0xa7f26836f282b732}, // exp10 = 141, index 483
	{lo: 0x3207d795430cd926, hi: 0xd1ef0244af2364ff}, // exp10 = 142, index 484
	{lo: 0x7f44e6bd49e807b8, hi: 0x8335616aed761f1f}, // exp10 = 143, index 485
	{lo: 0x5f16206c9c6209a6, hi: 0xa402b9c5a8d3a6e7}, // exp10 = 144, index 486
	{lo: 0x36dba887c37a8c0f, hi: 0xcd036837130890a1}, // exp10 = 145, index 487
	{lo: 0xc2494954da2c9789, hi: 0x802221226be55a64}, // exp10 = 146, index 488
	{lo: 0xf2db9baa10b7bd6c, hi: 0xa02aa96b06deb0fd}, // exp10 = 147, index 489
	{lo: 0x6f92829494e5acc7, hi: 0xc83553c5c8965d3d}, // exp10 = 148, index 490
	{lo: 0xcb772339ba1f17f9, hi: 0xfa42a8b73abbf48c}, // exp10 = 149, index 491
	{lo: 0xff2a760414536efb, hi: 0x9c69a97284b578d7}, // exp10 = 150, index 492
	{lo: 0xfef5138519684aba, hi: 0xc38413cf25e2d70d}, // exp10 = 151, index 493
	{lo: 0x7eb258665fc25d69, hi: 0xf46518c2ef5b8cd1}, // exp10 = 152, index 494
	{lo: 0xef2f773ffbd97a61, hi: 0x98bf2f79d5993802}, // exp10 = 153, index 495
	{lo: 0xaafb550ffacfd8fa, hi: 0xbeeefb584aff8603}, // exp10 = 154, index 496
	{lo: 0x95ba2a53f983cf38, hi: 0xeeaaba2e5dbf6784}, // exp10 = 155, index 497
	{lo: 0xdd945a747bf26183, hi: 0x952ab45cfa97a0b2}, // exp10 = 156, index 498
	{lo: 0x94f971119aeef9e4, hi: 0xba756174393d88df}, // exp10 = 157, index 499
	{lo: 0x7a37cd5601aab85d, hi: 0xe912b9d1478ceb17}, // exp10 = 158, index 500
	{lo: 0xac62e055c10ab33a, hi: 0x91abb422ccb812ee}, // exp10 = 159, index 501
	{lo: 0x577b986b314d6009, hi: 0xb616a12b7fe617aa}, // exp10 = 160, index 502
	{lo: 0xed5a7e85fda0b80b, hi: 0xe39c49765fdf9d94}, // exp10 = 161, index 503
	{lo: 0x14588f13be847307, hi: 0x8e41ade9fbebc27d}, // exp10 = 162, index 504
	{lo: 0x596eb2d8ae258fc8, hi: 0xb1d219647ae6b31c}, // exp10 = 163, index 505
	{lo: 0x6fca5f8ed9aef3bb, hi: 0xde469fbd99a05fe3}, // exp10 = 164, index 506
	{lo: 0x25de7bb9480d5854, hi: 0x8aec23d680043bee}, // exp10 = 165, index 507
	{lo: 0xaf561aa79a10ae6a, hi: 0xada72ccc20054ae9}, // exp10 = 166, index 508
	{lo: 0x1b2ba1518094da04, hi: 0xd910f7ff28069da4}, // exp10 = 167, index 509
	{lo: 0x90fb44d2f05d0842, hi: 0x87aa9aff79042286}, // exp10 = 168, index 510
	{lo: 0x353a1607ac744a53, hi: 0xa99541bf57452b28}, // exp10 = 169, index 511
	{lo: 0x42889b8997915ce8, hi: 0xd3fa922f2d1675f2}, // exp10 = 170, index 512
	{lo: 0x69956135febada11, hi: 0x847c9b5d7c2e09b7}, // exp10 = 171, index 513
	{lo: 0x43fab9837e699095, hi: 0xa59bc234db398c25}, // exp10 = 172, index 514
	{lo: 0x94f967e45e03f4bb, hi: 0xcf02b2c21207ef2e}, // exp10 = 173, index 515
	{lo: 0x1d1be0eebac278f5, hi: 0x8161afb94b44f57d}, // exp10 = 174, index 516
	{lo: 0x6462d92a69731732, hi: 0xa1ba1ba79e1632dc}, // exp10 = 175, index 517
	{lo: 0x7d7b8f7503cfdcfe, hi: 0xca28a291859bbf93}, // exp10 = 176, index 518
	{lo: 0x5cda735244c3d43e, hi: 0xfcb2cb35e702af78}, // exp10 = 177, index 519
	{lo: 0x3a0888136afa64a7, hi: 0x9defbf01b061adab}, // exp10 = 178, index 520
	{lo: 0x088aaa1845b8fdd0, hi: 0xc56baec21c7a1916}, // exp10 = 179, index 521
	{lo: 0x8aad549e57273d45, hi: 0xf6c69a72a3989f5b}, // exp10 = 180, index 522
	{lo: 0x36ac54e2f678864b, hi: 0x9a3c2087a63f6399}, // exp10 = 181, index 523
	{lo: 0x84576a1bb416a7dd, hi: 0xc0cb28a98fcf3c7f}, // exp10 = 182, index 524
	{lo: 0x656d44a2a11c51d5, hi: 0xf0fdf2d3f3c30b9f}, // exp10 = 183, index 525
	{lo: 0x9f644ae5a4b1b325, hi: 0x969eb7c47859e743}, // exp10 = 184, index 526
	{lo: 0x873d5d9f0dde1fee, hi: 0xbc4665b596706114}, // exp10 = 185, index 527
	{lo: 0xa90cb506d155a7ea, hi: 0xeb57ff22fc0c7959}, // exp10 = 186, index 528
	{lo: 0x09a7f12442d588f2, hi: 0x9316ff75dd87cbd8}, // exp10 = 187, index 529
	{lo: 0x0c11ed6d538aeb2f, hi: 0xb7dcbf5354e9bece}, // exp10 = 188, index 530
	{lo: 0x8f1668c8a86da5fa, hi: 0xe5d3ef282a242e81}, // exp10 = 189, index 531
	{lo: 0xf96e017d694487bc, hi: 0x8fa475791a569d10}, // exp10 = 190, index 532
	{lo: 0x37c981dcc395a9ac, hi: 0xb38d92d760ec4455}, // exp10 = 191, index 533
	{lo: 0x85bbe253f47b1417, hi: 0xe070f78d3927556a}, // exp10 = 192, index 534
	{lo: 0x93956d7478ccec8e, hi: 0x8c469ab843b89562}, // exp10 = 193, index 535
	{lo: 0x387ac8d1970027b2, hi: 0xaf58416654a6babb}, // exp10 = 194, index 536
	{lo: 0x06997b05fcc0319e, hi: 0xdb2e51bfe9d0696a}, // exp10 = 195, index 537
	{lo: 0x441fece3bdf81f03, hi: 0x88fcf317f22241e2}, // exp10 = 196, index 538
	{lo: 0xd527e81cad7626c3, hi: 0xab3c2fddeeaad25a}, // exp10 = 197, index 539
	{lo: 0x8a71e223d8d3b074, hi: 0xd60b3bd56a5586f1}, // exp10 = 198, index 540
	{lo: 0xf6872d5667844e49, hi: 0x85c7056562757456}, // exp10 = 199, index 541
	{lo: 0xb428f8ac016561db, hi: 0xa738c6bebb12d16c}, // exp10 = 200, index 542
	{lo: 0xe13336d701beba52, hi: 0xd106f86e69d785c7}, // exp10 = 201, index 543
	{lo: 0xecc0024661173473, hi: 0x82a45b450226b39c}, // exp10 = 202, index 544
	{lo: 0x27f002d7f95d0190, hi: 0xa34d721642b06084}, // exp10 = 203, index 545
	{lo: 0x31ec038df7b441f4, hi: 0xcc20ce9bd35c78a5}, // exp10 = 204, index 546
	{lo: 0x7e67047175a15271, hi: 0xff290242c83396ce}, // exp10 = 205, index 547
	{lo: 0x0f0062c6e984d386, hi: 0x9f79a169bd203e41}, // exp10 = 206, index 548
	{lo: 0x52c07b78a3e60868, hi: 0xc75809c42c684dd1}, // exp10 = 207, index 549
	{lo: 0xa7709a56ccdf8a82, hi: 0xf92e0c3537826145}, // exp10 = 208, index 550
	{lo: 0x88a66076400bb691, hi: 0x9bbcc7a142b17ccb}, // exp10 = 209, index 551
	{lo: 0x6acff893d00ea435, hi: 0xc2abf989935ddbfe}, // exp10 = 210, index 552
	{lo: 0x0583f6b8c4124d43, hi: 0xf356f7ebf83552fe}, // exp10 = 211, index 553
	{lo: 0xc3727a337a8b704a, hi: 0x98165af37b2153de}, // exp10 = 212, index 554
	{lo: 0x744f18c0592e4c5c, hi: 0xbe1bf1b059e9a8d6}, // exp10 = 213, index 555
	{lo: 0x1162def06f79df73, hi: 0xeda2ee1c7064130c}, // exp10 = 214, index 556
	{lo: 0x8addcb5645ac2ba8, hi: 0x9485d4d1c63e8be7}, // exp10 = 215, index 557
	{lo: 0x6d953e2bd7173692, hi: 0xb9a74a0637ce2ee1}, // exp10 = 216, index 558
	{lo: 0xc8fa8db6ccdd0437, hi: 0xe8111c87c5c1ba99}, // exp10 = 217, index 559
	{lo: 0x1d9c9892400a22a2, hi: 0x910ab1d4db9914a0}, // exp10 = 218, index 560
	{lo: 0x2503beb6d00cab4b, hi: 0xb54d5e4a127f59c8}, // exp10 = 219, index 561
	{lo: 0x2e44ae64840fd61d, hi: 0xe2a0b5dc971f303a}, // exp10 = 220, index 562
	{lo: 0x5ceaecfed289e5d2, hi: 0x8da471a9de737e24}, // exp10 = 221, index 563
	{lo: 0x7425a83e872c5f47, hi: 0xb10d8e1456105dad}, // exp10 = 222, index 564
	{lo: 0xd12f124e28f77719, hi: 0xdd50f1996b947518}, // exp10 = 223, index 565
	{lo: 0x82bd6b70d99aaa6f, hi: 0x8a5296ffe33cc92f}, // exp10 = 224, index 566
	{lo: 0x636cc64d1001550b, hi: 0xace73cbfdc0bfb7b}, // exp10 = 225, index 567
	{lo: 0x3c47f7e05401aa4e, hi: 0xd8210befd30efa5a}, // exp10 = 226, index 568
	{lo: 0x65acfaec34810a71, hi: 0x8714a775e3e95c78}, // exp10 = 227, index 569
	{lo: 0x7f1839a741a14d0d, hi: 0xa8d9d1535ce3b396}, // exp10 = 228, index 570
	{lo: 0x1ede48111209a050, hi: 0xd31045a8341ca07c}, // exp10 = 229, index 571
	{lo: 0x934aed0aab460432, hi: 0x83ea2b892091e44d}, // exp10 = 230, index 572
	{lo: 0xf81da84d5617853f, hi: 0xa4e4b66b68b65d60}, // exp10 = 231, index 573
	{lo: 0x36251260ab9d668e, hi: 0xce1de40642e3f4b9}, // exp10 = 232, index 574
	{lo: 0xc1d72b7c6b426019, hi: 0x80d2ae83e9ce78f3}, // exp10 = 233, index 575
	{lo: 0xb24cf65b8612f81f, hi: 0xa1075a24e4421730}, // exp10 = 234, index 576
	{lo: 0xdee033f26797b627, hi: 0xc94930ae1d529cfc}, // exp10 = 235, index 577
	{lo: 0x169840ef017da3b1, hi: 0xfb9b7cd9a4a7443c}, // exp10 = 236, index 578
	{lo: 0x8e1f289560ee864e, hi: 0x9d412e0806e88aa5}, // exp10 = 237, index 579
	{lo: 0xf1a6f2bab92a27e2, hi: 0xc491798a08a2ad4e}, // exp10 = 238, index 580
	{lo: 0xae10af696774b1db, hi: 0xf5b5d7ec8acb58a2}, // exp10 = 239, index 581
	{lo: 0xacca6da1e0a8ef29, hi: 0x9991a6f3d6bf1765}, // exp10 = 240, index 582
	{lo: 0x17fd090a58d32af3, hi: 0xbff610b0cc6edd3f}, // exp10 = 241, index 583
	{lo: 0xddfc4b4cef07f5b0, hi: 0xeff394dcff8a948e}, // exp10 = 242, index 584
	{lo: 0x4abdaf101564f98e, hi: 0x95f83d0a1fb69cd9}, // exp10 = 243, index 585
	{lo: 0x9d6d1ad41abe37f1, hi: 0xbb764c4ca7a4440f}, // exp10 = 244, index 586
	{lo: 0x84c86189216dc5ed, hi: 0xea53df5fd18d5513}, // exp10 = 245, index 587
	{lo: 0x32fd3cf5b4e49bb4, hi: 0x92746b9be2f8552c}, // exp10 = 246, index 588
	{lo: 0x3fbc8c33221dc2a1, hi: 0xb7118682dbb66a77}, // exp10 = 247, index 589
	{lo: 0x0fabaf3feaa5334a, hi: 0xe4d5e82392a40515}, // exp10 = 248, index 590
	{lo: 0x29cb4d87f2a7400e, hi: 0x8f05b1163ba6832d}, // exp10 = 249, index 591
	{lo: 0x743e20e9ef511012, hi: 0xb2c71d5bca9023f8}, // exp10 = 250, index 592
	{lo: 0x914da9246b255416, hi: 0xdf78e4b2bd342cf6}, // exp10 = 251, index 593
	{lo: 0x1ad089b6c2f7548e, hi: 0x8bab8eefb6409c1a}, // exp10 = 252, index 594
	{lo: 0xa184ac2473b529b1, hi: 0xae9672aba3d0c320}, // exp10 = 253, index 595
	{lo: 0xc9e5d72d90a2741e, hi: 0xda3c0f568cc4f3e8}, // exp10 = 254, index 596
	{lo: 0x7e2fa67c7a658892, hi: 0x8865899617fb1871}, // exp10 = 255, index 597
	{lo: 0xddbb901b98feeab7, hi: 0xaa7eebfb9df9de8d}, // exp10 = 256, index 598
	{lo: 0x552a74227f3ea565, hi: 0xd51ea6fa85785631}, // exp10 = 257, index 599
	{lo: 0xd53a88958f87275f, hi: 0x8533285c936b35de}, // exp10 = 258, index 600
	{lo: 0x8a892abaf368f137, hi: 0xa67ff273b8460356}, // exp10 = 259, index 601
	{lo: 0x2d2b7569b0432d85, hi: 0xd01fef10a657842c}, // exp10 = 260, index 602
	{lo: 0x9c3b29620e29fc73, hi: 0x8213f56a67f6b29b}, // exp10 = 261, index 603
	{lo: 0x8349f3ba91b47b8f, hi: 0xa298f2c501f45f42}, // exp10 = 262, index 604
	{lo: 0x241c70a936219a73, hi: 0xcb3f2f7642717713}, // exp10 = 263, index 605
	{lo: 0xed238cd383aa0110, hi: 0xfe0efb53d30dd4d7}, // exp10 = 264, index 606
	{lo: 0xf4363804324a40aa, hi: 0x9ec95d1463e8a506}, // exp10 = 265, index 607
	{lo: 0xb143c6053edcd0d5, hi: 0xc67bb4597ce2ce48}, // exp10 = 266, index 608
	{lo: 0xdd94b7868e94050a, hi: 0xf81aa16fdc1b81da}, // exp10 = 267, index 609
	{lo: 0xca7cf2b4191c8326, hi: 0x9b10a4e5e9913128}, // exp10 = 268, index 610
	{lo: 0xfd1c2f611f63a3f0, hi: 0xc1d4ce1f63f57d72}, // exp10 = 269, index 611
	{lo: 0xbc633b39673c8cec, hi: 0xf24a01a73cf2dccf}, // exp10 = 270, index 612
	{lo: 0xd5be0503e085d813, hi: 0x976e41088617ca01}, // exp10 = 271, index 613
	{lo: 0x4b2d8644d8a74e18, hi: 0xbd49d14aa79dbc82}, // exp10 = 272, index 614
	{lo: 0xddf8e7d60ed1219e, hi: 0xec9c459d51852ba2}, // exp10 = 273, index 615
	{lo: 0xcabb90e5c942b503, hi: 0x93e1ab8252f33b45}, // exp10 = 274, index 616
	{lo: 0x3d6a751f3b936243, hi: 0xb8da1662e7b00a17}, // exp10 = 275, index 617
	{lo: 0x0cc512670a783ad4, hi: 0xe7109bfba19c0c9d}, // exp10 = 276, index 618
	{lo: 0x27fb2b80668b24c5, hi: 0x906a617d450187e2}, // exp10 = 277, index 619
	{lo: 0xb1f9f660802dedf6, hi: 0xb484f9dc9641e9da}, // exp10 = 278, index 620
	{lo: 0x5e7873f8a0396973, hi: 0xe1a63853bbd26451}, // exp10 = 279, index 621
	{lo: 0xdb0b487b6423e1e8, hi: 0x8d07e33455637eb2}, // exp10 = 280, index 622
	{lo: 0x91ce1a9a3d2cda62, hi: 0xb049dc016abc5e5f}, // exp10 = 281, index 623
	{lo: 0x7641a140cc7810fb, hi: 0xdc5c5301c56b75f7}, // exp10 = 282, index 624
	{lo: 0xa9e904c87fcb0a9d, hi: 0x89b9b3e11b6329ba}, // exp10 = 283, index 625
	{lo: 0x546345fa9fbdcd44, hi: 0xac2820d9623bf429}, // exp10 = 284, index 626
	{lo: 0xa97c177947ad4095, hi: 0xd732290fbacaf133}, // exp10 = 285, index 627
	{lo: 0x49ed8eabcccc485d, hi: 0x867f59a9d4bed6c0}, // exp10 = 286, index 628
	{lo: 0x5c68f256bfff5a74, hi: 0xa81f301449ee8c70}, // exp10 = 287, index 629
	{lo: 0x73832eec6fff3111, hi: 0xd226fc195c6a2f8c}, // exp10 = 288, index 630
	{lo: 0xc831fd53c5ff7eab, hi: 0x83585d8fd9c25db7}, // exp10 = 289, index 631
	{lo: 0xba3e7ca8b77f5e55, hi: 0xa42e74f3d032f525}, // exp10 = 290, index 632
	{lo: 0x28ce1bd2e55f35eb, hi: 0xcd3a1230c43fb26f}, // exp10 = 291, index 633
	{lo: 0x7980d163cf5b81b3, hi: 0x80444b5e7aa7cf85}, // exp10 = 292, index 634
	{lo: 0xd7e105bcc332621f, hi: 0xa0555e361951c366}, // exp10 = 293, index 635
	{lo: 0x8dd9472bf3fefaa7, hi: 0xc86ab5c39fa63440}, // exp10 = 294, index 636
	{lo: 0xb14f98f6f0feb951, hi: 0xfa856334878fc150}, // exp10 = 295, index 637
	{lo: 0x6ed1bf9a569f33d3, hi: 0x9c935e00d4b9d8d2}, // exp10 = 296, index 638
	{lo: 0x0a862f80ec4700c8, hi: 0xc3b8358109e84f07}, // exp10 = 297, index 639
	{lo: 0xcd27bb612758c0fa, hi: 0xf4a642e14c6262c8}, // exp10 = 298, index 640
	{lo: 0x8038d51cb897789c, hi: 0x98e7e9cccfbd7dbd}, // exp10 = 299, index 641
	{lo: 0xe0470a63e6bd56c3, hi: 0xbf21e44003acdd2c}, // exp10 = 300, index 642
	{lo: 0x1858ccfce06cac74, hi: 0xeeea5d5004981478}, // exp10 = 301, index 643
	{lo: 0x0f37801e0c43ebc8, hi: 0x95527a5202df0ccb}, // exp10 = 302, index 644
	{lo: 0xd30560258f54e6ba, hi: 0xbaa718e68396cffd}, // exp10 = 303, index 645
	{lo: 0x47c6b82ef32a2069, hi: 0xe950df20247c83fd}, // exp10 = 304, index 646
	{lo: 0x4cdc331d57fa5441, hi: 0x91d28b7416cdd27e}, // exp10 = 305, index 647
	{lo: 0xe0133fe4adf8e952, hi: 0xb6472e511c81471d}, // exp10 = 306, index 648
	{lo: 0x58180fddd97723a6, hi: 0xe3d8f9e563a198e5}, // exp10 = 307, index 649
	{lo: 0x570f09eaa7ea7648, hi: 0x8e679c2f5e44ff8f}, // exp10 = 308, index 650
}
