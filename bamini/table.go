// Copyright 2026 The ConvertBaminiToUnicodePPTX Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package bamini

// baminiToUnicode is the Bamini25 glyph dictionary, in its published order.
// Bamini stores vowel signs in visual order, so the patterns for கை, கொ,
// கோ and friends cover the whole cluster (prefix glyphs n, N, i, ¿ plus the
// consonant, plus trailing h where the sign has a right half) and the
// replacement emits the consonant first as Unicode requires.
var baminiToUnicode = []Entry{
	// Alternate r-glyph forms.
	{"sp", "ளி"},
	{"hp", "ரி"},
	{"hP", "ரீ"},
	{"uP", "ரீ"},
	{"u;", "ர்"},
	{"h;", "ர்"},
	{"H", "ர்"},

	// க series.
	{"nfs", "கௌ"},
	{"Nfh", "கோ"},
	{"nfh", "கொ"},
	{"fh", "கா"},
	{"fp", "கி"},
	{"fP", "கீ"},
	{"F", "கு"},
	{"$", "கூ"},
	{"nf", "கெ"},
	{"Nf", "கே"},
	{"if", "கை"},
	{"f;", "க்"},
	{"f", "க"},

	// ங series.
	{"nqs", "ஙௌ"},
	{"Nqh", "ஙோ"},
	{"nqh", "ஙொ"},
	{"qh", "ஙா"},
	{"qp", "ஙி"},
	{"qP", "ஙீ"},
	{"nq", "ஙெ"},
	{"Nq", "ஙே"},
	{"iq", "ஙை"},
	{"q;", "ங்"},
	{"q", "ங"},

	// ச series.
	{"nrs", "சௌ"},
	{"Nrh", "சோ"},
	{"nrh", "சொ"},
	{"rh", "சா"},
	{"rp", "சி"},
	{"rP", "சீ"},
	{"R", "சு"},
	{"#", "சூ"},
	{"nr", "செ"},
	{"Nr", "சே"},
	{"ir", "சை"},
	{"r;", "ச்"},
	{"r", "ச"},

	// ஜ series.
	{"n[s", "ஜௌ"},
	{"N[h", "ஜோ"},
	{"n[h", "ஜொ"},
	{"[h", "ஜா"},
	{"[p", "ஜி"},
	{"[P", "ஜீ"},
	{"[{", "ஜு"},
	{"[_", "ஜூ"},
	{"n[", "ஜெ"},
	{"N[", "ஜே"},
	{"i[", "ஜை"},
	{"[;", "ஜ்"},
	{"[", "ஜ"},

	// ஞ series.
	{"nQs", "ஞௌ"},
	{"NQh", "ஞோ"},
	{"nQh", "ஞொ"},
	{"Qh", "ஞா"},
	{"Qp", "ஞி"},
	{"QP", "ஞீ"},
	{"nQ", "ஞெ"},
	{"NQ", "ஞே"},
	{"iQ", "ஞை"},
	{"Q;", "ஞ்"},
	{"Q", "ஞ"},

	// ட series.
	{"nls", "டௌ"},
	{"Nlh", "டோ"},
	{"nlh", "டொ"},
	{"lp", "டி"},
	{"lP", "டீ"},
	{"lh", "டா"},
	{"b", "டி"},
	{"B", "டீ"},
	{"L", "டு"},
	{"^", "டூ"},
	{"nl", "டெ"},
	{"Nl", "டே"},
	{"il", "டை"},
	{"l;", "ட்"},
	{"l", "ட"},

	// ண series.
	{"nzs", "ணௌ"},
	{"Nzh", "ணோ"},
	{"nzh", "ணொ"},
	{"zh", "ணா"},
	{"zp", "ணி"},
	{"zP", "ணீ"},
	{"Zh", "ணூ"},
	{"Z}", "ணூ"},
	{"nz", "ணெ"},
	{"Nz", "ணே"},
	{"iz", "ணை"},
	{"z;", "ண்"},
	{"Z", "ணு"},
	{"z", "ண"},

	// த series.
	{"njs", "தௌ"},
	{"Njh", "தோ"},
	{"njh", "தொ"},
	{"jh", "தா"},
	{"jp", "தி"},
	{"jP", "தீ"},
	{"Jh", "தூ"},
	{"J}", "தூ"},
	{"J", "து"},
	{"nj", "தெ"},
	{"Nj", "தே"},
	{"ij", "தை"},
	{"j;", "த்"},
	{"j", "த"},

	// ந series.
	{"nes", "நௌ"},
	{"Neh", "நோ"},
	{"neh", "நொ"},
	{"eh", "நா"},
	{"ep", "நி"},
	{"eP", "நீ"},
	{"E}", "நூ"},
	{"Eh", "நூ"},
	{"E", "நு"},
	{"ne", "நெ"},
	{"Ne", "நே"},
	{"ie", "நை"},
	{"e;", "ந்"},
	{"e", "ந"},

	// ன series.
	{"nds", "னௌ"},
	{"Ndh", "னோ"},
	{"ndh", "னொ"},
	{"dh", "னா"},
	{"dp", "னி"},
	{"dP", "னீ"},
	{"D}", "னூ"},
	{"Dh", "னூ"},
	{"D", "னு"},
	{"nd", "னெ"},
	{"Nd", "னே"},
	{"id", "னை"},
	{"d;", "ன்"},
	{"d", "ன"},

	// ப series.
	{"ngs", "பௌ"},
	{"Ngh", "போ"},
	{"ngh", "பொ"},
	{"gh", "பா"},
	{"gp", "பி"},
	{"gP", "பீ"},
	{"G", "பு"},
	{"ng", "பெ"},
	{"Ng", "பே"},
	{"ig", "பை"},
	{"g;", "ப்"},
	{"g", "ப"},

	// ம series.
	{"nks", "மௌ"},
	{"Nkh", "மோ"},
	{"nkh", "மொ"},
	{"kh", "மா"},
	{"kp", "மி"},
	{"kP", "மீ"},
	{"K", "மு"},
	{"%", "மூ"},
	{"nk", "மெ"},
	{"Nk", "மே"},
	{"ik", "மை"},
	{"k;", "ம்"},
	{"k", "ம"},

	// ய series.
	{"nas", "யௌ"},
	{"Nah", "யோ"},
	{"nah", "யொ"},
	{"ah", "யா"},
	{"ap", "யி"},
	{"aP", "யீ"},
	{"A", "யு"},
	{"A+", "யூ"},
	{"na", "யெ"},
	{"Na", "யே"},
	{"ia", "யை"},
	{"a;", "ய்"},
	{"a", "ய"},

	// ர series.
	{"nus", "ரௌ"},
	{"Nuh", "ரோ"},
	{"nuh", "ரொ"},
	{"uh", "ரா"},
	{"up", "ரி"},
	{"U", "ரு"},
	{"&", "ரூ"},
	{"nu", "ரெ"},
	{"Nu", "ரே"},
	{"iu", "ரை"},
	{"u", "ர"},

	// ல series.
	{"nys", "லௌ"},
	{"Nyh", "லோ"},
	{"nyh", "லொ"},
	{"yh", "லா"},
	{"yp", "லி"},
	{"yP", "லீ"},
	{"Yh", "லூ"},
	{"Y}", "லூ"},
	{"Y", "லு"},
	{"ny", "லெ"},
	{"Ny", "லே"},
	{"iy", "லை"},
	{"y;", "ல்"},
	{"y", "ல"},

	// ள series (ளி is "sp" in the alternate-forms group above).
	{"nss", "ளௌ"},
	{"Nsh", "ளோ"},
	{"nsh", "ளொ"},
	{"sh", "ளா"},
	{"sP", "ளீ"},
	{"Sh", "ளூ"},
	{"S", "ளு"},
	{"ns", "ளெ"},
	{"Ns", "ளே"},
	{"is", "ளை"},
	{"s;", "ள்"},
	{"s", "ள"},

	// வ series.
	{"ntt", "வௌ"},
	{"Nth", "வோ"},
	{"nth", "வொ"},
	{"th", "வா"},
	{"tp", "வி"},
	{"tP", "வீ"},
	{"nt", "வெ"},
	{"Nt", "வே"},
	{"it", "வை"},
	{"t;", "வ்"},
	{"t", "வ"},

	// ழ series.
	{"noo", "ழௌ"},
	{"Noh", "ழோ"},
	{"noh", "ழொ"},
	{"oh", "ழா"},
	{"op", "ழி"},
	{"oP", "ழீ"},
	{"*", "ழூ"},
	{"O", "ழு"},
	{"no", "ழெ"},
	{"No", "ழே"},
	{"io", "ழை"},
	{"o;", "ழ்"},
	{"o", "ழ"},

	// ற series.
	{"nws", "றௌ"},
	{"Nwh", "றோ"},
	{"nwh", "றொ"},
	{"wh", "றா"},
	{"wp", "றி"},
	{"wP", "றீ"},
	{"Wh", "றூ"},
	{"W}", "றூ"},
	{"W", "று"},
	{"nw", "றெ"},
	{"Nw", "றே"},
	{"iw", "றை"},
	{"w;", "ற்"},
	{"w", "ற"},

	// ஹ series.
	{"n``", "ஹௌ"},
	{"N`h", "ஹோ"},
	{"n`h", "ஹொ"},
	{"`h", "ஹா"},
	{"`p", "ஹி"},
	{"`P", "ஹீ"},
	{"n`", "ஹெ"},
	{"N`", "ஹே"},
	{"i`", "ஹை"},
	{"`;", "ஹ்"},
	{"`", "ஹ"},

	// ஷ series.
	{"n\\s", "ஷௌ"},
	{"N\\h", "ஷோ"},
	{"n\\h", "ஷொ"},
	{"\\h", "ஷா"},
	{"\\p", "ஷி"},
	{"\\P", "ஷீ"},
	{"n\\", "ஷெ"},
	{"N\\", "ஷே"},
	{"i\\", "ஷை"},
	{"\\;", "ஷ்"},
	{"\\", "ஷ"},

	// ஸ series.
	{"n]s", "ஸௌ"},
	{"N]h", "ஸோ"},
	{"n]h", "ஸொ"},
	{"]h", "ஸா"},
	{"]p", "ஸி"},
	{"]P", "ஸீ"},
	{"n]", "ஸெ"},
	{"N]", "ஸே"},
	{"i]", "ஸை"},
	{"];", "ஸ்"},
	{"]", "ஸ"},

	// Independent vowels and symbols.
	{"m", "அ"},
	{"M", "ஆ"},
	{"<", "ஈ"},
	{"c", "உ"},
	{"C", "ஊ"},
	{"v", "எ"},
	{"V", "ஏ"},
	{"I", "ஐ"},
	{"x", "ஒ"},
	{"X", "ஓ"},
	{"xs", "ஔ"},
	{"/", "ஃ"},
	{",", "இ"},
	{"=", "ஸ்ரீ"},
	{">", ","},
	{"T", "வு"},
	{"வு+", "வூ"},
	{"பு+", "பூ"},
	{"யு+", "யூ"},
	{"சு+", "சூ"},
	{"+", "ooh"},
	{";", "்"},
	{"@", ";"},

	// ¿ is the detached ை sign typed before its consonant.
	{"¿f", "கை"},
	{"¿q", "ஙை"},
	{"¿r", "சை"},
	{"¿[", "ஜை"},
	{"¿Q", "ஞை"},
	{"¿l", "டை"},
	{"¿z", "ணை"},
	{"¿j", "தை"},
	{"¿e", "நை"},
	{"¿d", "னை"},
	{"¿g", "பை"},
	{"¿k", "மை"},
	{"¿a", "யை"},
	{"¿u", "ரை"},
	{"¿y", "லை"},
	{"¿s", "ளை"},
	{"¿t", "வை"},
	{"¿o", "ழை"},
	{"¿w", "றை"},
	{"¿`", "ஹை"},
	{"¿\\", "ஷை"},
	{"¿]", "ஸை"},
	{"¿", "ை"},

	{"≈", "ௐ"},
}
