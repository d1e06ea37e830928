package exposure

const schedulePage = `<!DOCTYPE html>
<html><body>
<div class="container">
  <div class="bg-dark text-white mb-4 p-2"><i class="fa"></i><span>Saturday, January 13, 2024</span></div>
  <div class="card mb-3">
    <div class="card-header">
      <div>9:00 AM</div>
      <span>Lakeside High School</span> <span>(Court 2)</span>
    </div>
    <div class="card-body">
      <div class="d-flex">
        <div class="text-truncate mr-auto"><a href="/t/1">Shorewood  Storm</a></div>
        <span class="final-score">40</span>
      </div>
      <div class="d-flex">
        <div class="text-truncate mr-auto"><a href="/t/2">Lakeside Lady Hawks</a></div>
        <span class="final-score">44</span>
      </div>
    </div>
    <div class="card-footer">6th Girls, Pool A</div>
  </div>
  <div class="card mb-3">
    <div class="card-header"><div>10:30 AM</div><span>Shorewood Rec Center</span><span>(Court 1)</span></div>
    <div class="card-body">
      <div class="d-flex"><div class="text-truncate mr-auto"><a>Northgate Select</a></div><span class="final-score">31</span></div>
      <div class="d-flex"><div class="text-truncate mr-auto"><a>Riverview Elite</a></div><span class="final-score">29</span></div>
    </div>
    <div class="card-footer">7th Girls, Pool B</div>
  </div>
  <div class="card"><div class="card-body"><p>Sponsored by the league</p></div></div>
  <div class="bg-dark text-white mb-4"><span>Sunday, January 14, 2024</span></div>
  <div class="card mb-3">
    <div class="card-header"><div>1:00 PM</div><span>Lakeside High School</span><span>(Court 1)</span></div>
    <div class="card-body">
      <div class="d-flex"><div class="text-truncate mr-auto">Northgate Select</div><span class="final-score">(A)</span></div>
      <div class="d-flex"><div class="text-truncate mr-auto"><a>Shorewood Storm</a></div><span class="final-score">(H)</span></div>
    </div>
    <div class="card-footer">6th Girls, Bracket</div>
  </div>
</div>
</body></html>`
